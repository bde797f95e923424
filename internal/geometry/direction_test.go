package geometry

import "testing"

func TestOppositeIsInvolutive(t *testing.T) {
	for _, d := range []Direction{Front, Back, Left, Right, Top, Bottom} {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", d, got, d)
		}
	}
}

func TestProdPanicsOnParallelPairs(t *testing.T) {
	for _, d := range []Direction{Front, Back, Left, Right, Top, Bottom} {
		for _, other := range []Direction{d, d.Opposite()} {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Prod(%s, %s) did not panic", d, other)
					}
				}()
				d.Prod(other)
			}()
		}
	}
}

func TestProdMatchesRightHandedCornerSpin(t *testing.T) {
	cases := []struct {
		a, b, want Direction
	}{
		{Front, Left, Bottom},
		{Front, Right, Top},
		{Top, Front, Right},
		{Left, Front, Top},
	}
	for _, c := range cases {
		if got := c.a.Prod(c.b); got != c.want {
			t.Errorf("%s.Prod(%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}
