package ui

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, Badge{"Diproses", "warning"}, StatusBadge(models.StatusDiproses))
	assert.Equal(t, Badge{"Dikirim", "info"}, StatusBadge(models.StatusDikirim))
	assert.Equal(t, Badge{"Selesai", "success"}, StatusBadge(models.StatusSelesai))
	assert.Equal(t, Badge{"Dibatalkan", "danger"}, StatusBadge(models.StatusDibatalkan))
	assert.Equal(t, Badge{"Menunggu", "default"}, StatusBadge("MENUNGGU"))
	assert.Equal(t, Badge{"-", "default"}, StatusBadge(""))
	assert.Equal(t, Badge{"Ëkspedisi", "default"}, StatusBadge("ëKSPEDISI"))
	assert.Equal(t, Badge{"Élevé", "default"}, StatusBadge("élevé"))
}

func TestToastAutoClosesOnce(t *testing.T) {
	var calls int32
	toast := NewToast(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	toast.Open()
	assert.True(t, toast.Visible())

	assert.Eventually(t, func() bool { return !toast.Visible() }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestToastManualCloseCancelsTimer(t *testing.T) {
	var calls int32
	toast := NewToast(30*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	toast.Open()
	toast.Close()
	assert.False(t, toast.Visible())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	toast.Close()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestToastStopSkipsCallback(t *testing.T) {
	var calls int32
	toast := NewToast(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	toast.Open()
	toast.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.False(t, toast.Visible())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestToastReopenRestartsDelay(t *testing.T) {
	var calls int32
	toast := NewToast(150*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	toast.Open()
	time.Sleep(100 * time.Millisecond)
	toast.Open()
	time.Sleep(80 * time.Millisecond)
	assert.True(t, toast.Visible())

	assert.Eventually(t, func() bool { return !toast.Visible() }, time.Second, 5*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
