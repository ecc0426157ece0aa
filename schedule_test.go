package sqz

import "testing"

func TestScheduleTaskVisitsEverySubband(t *testing.T) {
	ctx := newCodecContext(16, 16, 3, ColorYCoCgR, ScanRaster, false)

	visited := map[*subband]int{}
	init := func(band *subband, buf *bitBuffer) bool {
		ctx.initSubband(band)
		return true
	}
	task := func(band *subband, buf *bitBuffer) bool {
		visited[band]++
		band.bitplane = 0
		return true
	}

	buf := make([]byte, 4096)
	w := newBitBuffer(buf)
	ctx.scheduleTask(w, init, task)

	for p := 0; p < ctx.numPlanes; p++ {
		for level := 0; level < ctx.dwtLevels; level++ {
			start := 0
			if level > 0 {
				start = 1
			}
			for orientation := start; orientation < int(numOrientations); orientation++ {
				band := ctx.bands[p][level][orientation]
				if visited[band] == 0 {
					t.Errorf("plane=%d level=%d orientation=%d never visited", p, level, orientation)
				}
			}
		}
	}
}

func TestScheduleTaskStopsOnEOB(t *testing.T) {
	ctx := newCodecContext(16, 16, 2, ColorGrayscale, ScanRaster, false)

	calls := 0
	init := func(band *subband, buf *bitBuffer) bool {
		ctx.initSubband(band)
		return true
	}
	task := func(band *subband, buf *bitBuffer) bool {
		calls++
		return !buf.eob()
	}

	buf := make([]byte, 0)
	w := newBitBuffer(buf)
	ctx.scheduleTask(w, init, task)

	if calls != 0 {
		t.Errorf("scheduleTask invoked task %d times on a zero-length buffer, want 0", calls)
	}
}

func TestScheduleLumaLeadsChroma(t *testing.T) {
	// No chroma subband may become eligible before the luma HL subband of
	// level 0, so a truncated stream carries the luma LL (round 0) and its
	// first detail before any color information.
	ctx := newCodecContext(16, 16, 1, ColorYCoCgR, ScanRaster, false)

	lumaRound := ctx.bands[0][0][OrientHL].round
	for p := 1; p < ctx.numPlanes; p++ {
		for orientation := 0; orientation < int(numOrientations); orientation++ {
			band := ctx.bands[p][0][orientation]
			if band == nil {
				continue
			}
			if band.round < lumaRound {
				t.Errorf("chroma plane %d orientation %d round=%d starts before luma round=%d",
					p, orientation, band.round, lumaRound)
			}
		}
	}
}

func TestScheduleTableInBounds(t *testing.T) {
	for mode := ColorGrayscale; mode < colorModeCount; mode++ {
		planes := numberOfPlanes[mode]
		for p := 0; p < planes; p++ {
			for level := 0; level < dwtMaxLevel; level++ {
				for orientation := 0; orientation < int(numOrientations); orientation++ {
					// Every entry must be reachable and non-negative; uint8
					// guarantees non-negative, this just documents the
					// invariant and exercises every table cell actually used.
					_ = schedule[mode][p][level][orientation]
				}
			}
		}
	}
}
