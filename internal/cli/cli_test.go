package cli

import "testing"

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantCampaign string
		wantRoot     string
		wantTrack    bool
		wantErr      bool
	}{
		{
			name:      "defaults",
			args:      nil,
			wantTrack: true,
		},
		{
			name:      "explicit dot root survives",
			args:      []string{"-root", "."},
			wantRoot:  ".",
			wantTrack: true,
		},
		{
			name:         "all flags",
			args:         []string{"-campaign", "mothers-day-es", "-root", "/srv/site", "-track=false"},
			wantCampaign: "mothers-day-es",
			wantRoot:     "/srv/site",
			wantTrack:    false,
		},
		{
			name:         "campaign trimmed",
			args:         []string{"-campaign", "  mothers-day  "},
			wantCampaign: "mothers-day",
			wantTrack:    true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if got.Campaign != tt.wantCampaign || got.Root != tt.wantRoot || got.Track != tt.wantTrack {
				t.Errorf("ParseArgs(%v) = %+v", tt.args, got)
			}
		})
	}
}
