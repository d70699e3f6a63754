package ui

import (
	"sync"
	"time"
)

const DefaultToastDelay = 3 * time.Second

// Toast tampil saat Open dan menutup sendiri setelah delay. onClose dipanggil tepat
// sekali per pembukaan, baik lewat Close maupun auto-close.
type Toast struct {
	mu      sync.Mutex
	delay   time.Duration
	onClose func()
	visible bool
	timer   *time.Timer
	gen     uint64
}

func NewToast(delay time.Duration, onClose func()) *Toast {
	if delay <= 0 {
		delay = DefaultToastDelay
	}
	return &Toast{delay: delay, onClose: onClose}
}

// Open menampilkan toast; kalau sudah tampil, hitungan delay diulang.
func (t *Toast) Open() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.visible = true
	t.timer = time.AfterFunc(t.delay, func() { t.close(gen) })
}

// Close menutup lebih awal dan membatalkan auto-close yang tertunda.
func (t *Toast) Close() {
	t.mu.Lock()
	gen := t.gen
	t.mu.Unlock()
	t.close(gen)
}

// Stop membatalkan timer tanpa memanggil onClose (komponen dilepas).
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	t.visible = false
}

func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

func (t *Toast) close(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || !t.visible {
		t.mu.Unlock()
		return
	}
	t.visible = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	cb := t.onClose
	t.mu.Unlock()

	if cb != nil {
		cb()
	}
}
