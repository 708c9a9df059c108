package config

import "testing"

func TestDefaultAlwaysPrimeLimitIsLastPrimeSquared(t *testing.T) {
	c := Default()
	want := uint64(251 * 251)
	if c.AlwaysPrimeLimit != want {
		t.Fatalf("AlwaysPrimeLimit = %d, want %d", c.AlwaysPrimeLimit, want)
	}
}

func TestDefaultPollardRhoMatchesUpstream(t *testing.T) {
	c := Default()
	if c.PollardRho.GCDThreshold != 608 || c.PollardRho.StartingLength != 19 {
		t.Fatalf("PollardRho tuning = %+v, want GCDThreshold=608 StartingLength=19", c.PollardRho)
	}
}

func TestECMTuningMonotonic(t *testing.T) {
	c := Default()
	small := c.ECMTuning(20)
	large := c.ECMTuning(100)
	if large.Curves < small.Curves || large.B1 < small.B1 {
		t.Fatalf("ECM tuning not monotonic: small=%+v large=%+v", small, large)
	}
}
