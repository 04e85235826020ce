package swing

import (
	"math"
	"testing"
)

func TestCameraFollowEasesTowardLead(t *testing.T) {
	c := Camera{}
	c.Follow(100, 200, 0.1)
	if math.Abs(c.X-(-10)) > 1e-9 {
		t.Fatalf("camera x = %f, want -10", c.X)
	}

	for i := 0; i < 500; i++ {
		c.Follow(1000, 200, 0.1)
	}
	if math.Abs(c.X-800) > 1e-6 {
		t.Fatalf("camera x = %f, want convergence to 800", c.X)
	}
}
