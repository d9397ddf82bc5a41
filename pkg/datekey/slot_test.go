package datekey

import "testing"

func TestSlotFor(t *testing.T) {
	cases := []struct {
		label string
		want  Slot
	}{
		{"", Morning},
		{"all-day", Morning},
		{"7:30 AM", Morning},
		{"7:30 AM - 4:00 PM", Evening}, // "pm" wins over the morning start
		{"morning", Morning},
		{"flexible", Morning},
		{"afternoon", Afternoon},
		{"12:30", Afternoon},
		{"13:00", Afternoon},
		{"14:15", Afternoon},
		{"evening", Evening},
		{"night", Evening},
		{"17:00", Evening},
		{"18:30", Evening},
		{"19:45", Evening},
		{"2:00 PM", Evening}, // pm token checked before afternoon hours
	}
	for _, tc := range cases {
		if got := SlotFor(tc.label); got != tc.want {
			t.Fatalf("SlotFor(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestSlotNamed(t *testing.T) {
	if got := SlotNamed("evening"); got != Evening {
		t.Fatalf("expected evening, got %s", got)
	}
	if got := SlotNamed(" Afternoon "); got != Afternoon {
		t.Fatalf("expected afternoon, got %s", got)
	}
	if got := SlotNamed("whenever"); got != Morning {
		t.Fatalf("expected morning fallback, got %s", got)
	}
}
