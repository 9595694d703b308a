package canvas

import "testing"

// TestCanvas_SetGetUnset tests the basic pixel lifecycle.
func TestCanvas_SetGetUnset(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"Origin", 0, 0},
		{"WithinFirstCell", 1, 3},
		{"SecondCell", 2, 0},
		{"FarOut", 101, 203},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()

			if c.Get(tt.x, tt.y) {
				t.Errorf("Get(%d, %d) = true on empty canvas", tt.x, tt.y)
			}

			c.Set(tt.x, tt.y)
			if !c.Get(tt.x, tt.y) {
				t.Errorf("Get(%d, %d) = false after Set", tt.x, tt.y)
			}

			c.Unset(tt.x, tt.y)
			if c.Get(tt.x, tt.y) {
				t.Errorf("Get(%d, %d) = true after Unset", tt.x, tt.y)
			}
		})
	}
}

// TestCanvas_DotMasks pins the bit-to-position table. A transposed or
// shifted table renders mirrored output, so these literal masks must hold.
func TestCanvas_DotMasks(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"TopLeft", 0, 0, 0x01},
		{"TopRight", 1, 0, 0x08},
		{"Row1Left", 0, 1, 0x02},
		{"Row1Right", 1, 1, 0x10},
		{"Row2Left", 0, 2, 0x04},
		{"Row2Right", 1, 2, 0x20},
		{"BottomLeft", 0, 3, 0x40},
		{"BottomRight", 1, 3, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Set(tt.x, tt.y)
			if got := c.Mask(0, 0); got != tt.want {
				t.Errorf("Mask(0, 0) after Set(%d, %d) = %#02x, want %#02x", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestCanvas_SetIdempotent verifies Set twice equals Set once.
func TestCanvas_SetIdempotent(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"Dot7", 0, 3, 0x40},
		{"Dot8", 1, 3, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Set(tt.x, tt.y)
			once := c.Mask(0, 0)
			c.Set(tt.x, tt.y)
			if got := c.Mask(0, 0); got != once {
				t.Errorf("Mask(0, 0) after second Set = %#02x, want %#02x", got, once)
			}
			if once != tt.want {
				t.Errorf("Mask(0, 0) = %#02x, want %#02x", once, tt.want)
			}
		})
	}
}

// TestCanvas_ToggleTwice verifies a double toggle is a no-op.
func TestCanvas_ToggleTwice(t *testing.T) {
	c := New()

	c.Toggle(4, 5)
	if !c.Get(4, 5) {
		t.Error("Get(4, 5) = false after first Toggle")
	}
	c.Toggle(4, 5)
	if c.Get(4, 5) {
		t.Error("Get(4, 5) = true after second Toggle")
	}

	// Toggling on top of a set pixel clears it.
	c.Set(4, 5)
	c.Toggle(4, 5)
	if c.Get(4, 5) {
		t.Error("Get(4, 5) = true after Set then Toggle")
	}
}

// TestCanvas_GetDoesNotMutate verifies reads never materialize cells.
func TestCanvas_GetDoesNotMutate(t *testing.T) {
	c := New()
	c.Get(10, 10)
	if len(c.cells) != 0 {
		t.Errorf("Get created %d cell entries", len(c.cells))
	}
}

// TestCanvas_ZeroMaskDropped verifies cells emptied by Unset or Toggle do
// not linger and widen the bounding box.
func TestCanvas_ZeroMaskDropped(t *testing.T) {
	c := New()
	c.Set(0, 0)
	c.Set(20, 0)
	c.Unset(20, 0)
	if _, max := c.ColRange(); max != 0 {
		t.Errorf("ColRange max = %d after Unset emptied cell, want 0", max)
	}
	c.Toggle(20, 0)
	c.Toggle(20, 0)
	if _, max := c.ColRange(); max != 0 {
		t.Errorf("ColRange max = %d after Toggle emptied cell, want 0", max)
	}
}

// TestCanvas_NegativeCoordinates verifies out-of-domain input is ignored.
func TestCanvas_NegativeCoordinates(t *testing.T) {
	c := New()
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Toggle(-3, -4)
	if len(c.cells) != 0 {
		t.Errorf("negative coordinates created %d cell entries", len(c.cells))
	}
	if c.Get(-1, -1) {
		t.Error("Get(-1, -1) = true")
	}
	c.Unset(-1, 0) // must not panic
}

// TestCanvas_EmptyRanges pins the empty-canvas sentinels.
func TestCanvas_EmptyRanges(t *testing.T) {
	c := New()

	if min, max := c.RowRange(); min != 0 || max != 0 {
		t.Errorf("RowRange() = (%d, %d) on empty canvas, want (0, 0)", min, max)
	}
	if min, max := c.ColRange(); min != 0 || max != 0 {
		t.Errorf("ColRange() = (%d, %d) on empty canvas, want (0, 0)", min, max)
	}
	if got := c.Frame(); got != "" {
		t.Errorf("Frame() = %q on empty canvas, want \"\"", got)
	}
}

// TestCanvas_Ranges verifies the bounding box tracks content.
func TestCanvas_Ranges(t *testing.T) {
	c := New()
	c.Set(2, 2)
	c.Set(10, 10)

	if min, max := c.RowRange(); min != 0 || max != 2 {
		t.Errorf("RowRange() = (%d, %d), want (0, 2)", min, max)
	}
	if min, max := c.ColRange(); min != 1 || max != 5 {
		t.Errorf("ColRange() = (%d, %d), want (1, 5)", min, max)
	}
}

// TestCanvas_Frame tests frame serialization.
func TestCanvas_Frame(t *testing.T) {
	t.Run("SingleDot", func(t *testing.T) {
		c := New()
		c.Set(0, 0)
		if got := c.Frame(); got != "⠁" {
			t.Errorf("Frame() = %q, want %q", got, "⠁")
		}
	})

	t.Run("BlankCellsFillTheBox", func(t *testing.T) {
		c := New()
		c.Set(0, 0)
		c.Set(10, 0)
		// Cells 1-4 hold no dots but still render as U+2800 so the row
		// keeps uniform width.
		want := "⠁⠀⠀⠀⠀⠁"
		if got := c.Frame(); got != want {
			t.Errorf("Frame() = %q, want %q", got, want)
		}
	})

	t.Run("CroppedToBoundingBox", func(t *testing.T) {
		c := New()
		c.Set(4, 8) // cell (2, 2); frame starts there, not at the origin
		if got := c.Frame(); got != "⠁" {
			t.Errorf("Frame() = %q, want %q", got, "⠁")
		}
	})

	t.Run("MultipleRows", func(t *testing.T) {
		c := New()
		c.Set(0, 0)
		c.Set(0, 4)
		want := "⠁\n⠁"
		if got := c.Frame(); got != want {
			t.Errorf("Frame() = %q, want %q", got, want)
		}
	})

	t.Run("StringerMatchesFrame", func(t *testing.T) {
		c := New()
		c.Set(1, 1)
		if c.String() != c.Frame() {
			t.Error("String() != Frame()")
		}
	})
}

// TestCanvas_Clear verifies Clear empties the canvas completely.
func TestCanvas_Clear(t *testing.T) {
	c := New()
	c.Set(3, 3)
	c.Set(30, 17)
	c.Clear()

	if c.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", c.Count())
	}
	if got := c.Frame(); got != "" {
		t.Errorf("Frame() = %q after Clear, want \"\"", got)
	}
}

// TestCanvas_Count verifies the set-pixel count.
func TestCanvas_Count(t *testing.T) {
	c := New()
	c.Set(0, 0)
	c.Set(0, 0) // duplicate
	c.Set(1, 0)
	c.Set(8, 9)
	if got := c.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}
