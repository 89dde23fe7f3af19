package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "all rows",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4, NoticeHeight: 1, HelpHeight: 1},
			want:         33,
		},
		{
			name:         "full help",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4, NoticeHeight: 1, HelpHeight: 6},
			want:         28,
		},
		{
			name:         "exactly minimum",
			windowHeight: 12,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4, NoticeHeight: 1, HelpHeight: 1},
			want:         MinListHeight,
		},
		{
			name:         "too small",
			windowHeight: 10,
			opts:         ContentOpts{HeaderHeight: 1, PlayerBarHeight: 4, NoticeHeight: 1, HelpHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}
