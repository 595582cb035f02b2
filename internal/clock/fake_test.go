package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)

func TestFake_NowMovesOnlyWhenTold(t *testing.T) {
	c := Fake(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, epoch.Add(time.Minute), c.Now())

	c.Set(epoch)
	assert.Equal(t, epoch, c.Now())
}

func TestFake_TickerFiresOnDeadline(t *testing.T) {
	c := Fake(epoch)
	tk := c.NewTicker(10 * time.Second)
	defer tk.Stop()

	c.Advance(9 * time.Second)
	select {
	case <-tk.C:
		t.Fatal("ticked early")
	default:
	}

	c.Advance(time.Second)
	select {
	case at := <-tk.C:
		assert.Equal(t, epoch.Add(10*time.Second), at)
	default:
		t.Fatal("expected a tick")
	}
}

func TestFake_StoppedTickerIsSilent(t *testing.T) {
	c := Fake(epoch)
	tk := c.NewTicker(time.Second)
	tk.Stop()

	c.Advance(time.Minute)
	select {
	case <-tk.C:
		t.Fatal("stopped ticker ticked")
	default:
	}
}

func TestFake_NewTickerPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { Fake(epoch).NewTicker(0) })
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	assert.False(t, got.Before(before))
}
