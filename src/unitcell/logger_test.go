package unitcell

import "testing"

func TestSetLogLevel(t *testing.T) {
	orig := GetLogLevel()
	defer func() { setLevelForTest(orig) }()

	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
	}
	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := GetLogLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q): level = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetLogLevelUnknownIsIgnored(t *testing.T) {
	orig := GetLogLevel()
	defer func() { setLevelForTest(orig) }()

	SetLogLevel("warn")
	SetLogLevel("verbose")
	if got := GetLogLevel(); got != LevelWarn {
		t.Fatalf("unknown level changed state: %v", got)
	}
}

func setLevelForTest(l LogLevel) {
	switch l {
	case LevelDebug:
		SetLogLevel("debug")
	case LevelInfo:
		SetLogLevel("info")
	case LevelWarn:
		SetLogLevel("warn")
	case LevelError:
		SetLogLevel("error")
	}
}
