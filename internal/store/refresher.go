package store

import (
	"log"
	"time"
)

// Refresher keeps the public caches warm by refetching them on an interval.
type Refresher struct {
	hackathons *HackathonStore
	blog       *BlogStore
	interval   time.Duration
	stopCh     chan struct{}
}

func NewRefresher(hackathons *HackathonStore, blog *BlogStore, interval time.Duration) *Refresher {
	return &Refresher{
		hackathons: hackathons,
		blog:       blog,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

func (r *Refresher) Start() {
	if r.interval <= 0 {
		return
	}
	go r.loop()
	log.Printf("[Refresher] started (every %s)", r.interval)
}

func (r *Refresher) Stop() {
	close(r.stopCh)
	log.Println("[Refresher] stopped")
}

func (r *Refresher) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.hackathons.FetchAll()
			r.blog.FetchAll()
		}
	}
}
