package definitions

import "testing"

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		name string
		e    ErrorCode
		want string
	}{
		{name: "none", e: ErrorNone, want: ErrorNoneName},
		{name: "auth_failed", e: ErrorAuthFailed, want: ErrorAuthFailedName},
		{name: "network", e: ErrorNetwork, want: ErrorNetworkName},
		{name: "unknown", e: ErrorCode(4), want: "unknown(4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Fatalf("ErrorCode(%d).String() = %q, want %q", tt.e, got, tt.want)
			}
		})
	}
}

func TestErrorCode_NumericContract(t *testing.T) {
	if ErrorNone != 0 || ErrorAuthFailed != 1 || ErrorNetwork != 9 {
		t.Fatalf("unexpected numeric codes: %d %d %d", ErrorNone, ErrorAuthFailed, ErrorNetwork)
	}

	if ErrorCode(2).IsValid() {
		t.Fatal("code 2 must not be valid")
	}
}

func TestMethod_Strategy(t *testing.T) {
	tests := []struct {
		m    Method
		want Method
	}{
		{m: MethodProxy, want: MethodProxy},
		{m: MethodIAAA, want: MethodIAAA},
		{m: Method("vpn"), want: MethodIAAA},
		{m: Method(""), want: MethodIAAA},
		{m: Method("PROXY"), want: MethodIAAA},
	}

	for _, tt := range tests {
		if got := tt.m.Strategy(); got != tt.want {
			t.Fatalf("Method(%q).Strategy() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
