package protocol

import "testing"

func TestCommandConstructors(t *testing.T) {
	tests := []struct {
		name  string
		build func() ([]byte, error)
		want  string
	}{
		{
			name:  "get sysinfo",
			build: GetSysinfoCommand,
			want:  `{"system":{"get_sysinfo":{}}}`,
		},
		{
			name:  "relay on",
			build: func() ([]byte, error) { return SetRelayStateCommand(1) },
			want:  `{"system":{"set_relay_state":{"state":1}}}`,
		},
		{
			name:  "relay off",
			build: func() ([]byte, error) { return SetRelayStateCommand(0) },
			want:  `{"system":{"set_relay_state":{"state":0}}}`,
		},
		{
			name:  "led off flag set",
			build: func() ([]byte, error) { return SetLedOffCommand(1) },
			want:  `{"system":{"set_led_off":{"off":1}}}`,
		},
		{
			name:  "reboot with delay",
			build: func() ([]byte, error) { return RebootCommand(3) },
			want:  `{"system":{"reboot":{"delay":3}}}`,
		},
		{
			name:  "factory reset immediate",
			build: func() ([]byte, error) { return FactoryResetCommand(0) },
			want:  `{"system":{"reset":{"delay":0}}}`,
		},
		{
			name:  "cloud info",
			build: CloudInfoCommand,
			want:  `{"cnCloud":{"get_info":{}}}`,
		},
		{
			name:  "scan with refresh",
			build: func() ([]byte, error) { return ScanInfoCommand(1) },
			want:  `{"netif":{"get_scaninfo":{"refresh":1}}}`,
		},
		{
			name:  "emeter realtime",
			build: RealtimeCommand,
			want:  `{"emeter":{"get_realtime":{}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build()
			if err != nil {
				t.Fatalf("constructor error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("command = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildCommandNilParams(t *testing.T) {
	got, err := BuildCommand("time", "get_time", nil)
	if err != nil {
		t.Fatalf("BuildCommand() error = %v", err)
	}
	if string(got) != `{"time":{"get_time":{}}}` {
		t.Errorf("command = %s, want empty params object", got)
	}
}
