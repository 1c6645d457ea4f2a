package bt

import "testing"

func TestStatusInvert(t *testing.T) {
	cases := []struct {
		in   Status
		want Status
	}{
		{Success, Failure},
		{Failure, Success},
		{Running, Running},
	}

	for _, c := range cases {
		if got := c.in.Invert(); got != c.want {
			t.Errorf("%s.Invert() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestStatusInvertInvolution(t *testing.T) {
	for _, s := range []Status{Running, Success, Failure} {
		if got := s.Invert().Invert(); got != s {
			t.Errorf("%s.Invert().Invert() = %s, want %s", s, got, s)
		}
	}
}

func TestStatusDone(t *testing.T) {
	if Running.Done() {
		t.Errorf("Running.Done() = true, want false")
	}

	if !Success.Done() {
		t.Errorf("Success.Done() = false, want true")
	}

	if !Failure.Done() {
		t.Errorf("Failure.Done() = false, want true")
	}
}

func TestStatusString(t *testing.T) {
	if Status(99).String() == "" {
		t.Errorf("unknown Status.String() returned empty string")
	}
}
