// Package worker 提供背景工作池，用於上傳後產生縮圖等不阻塞請求的工作
package worker

import (
	"context"
	"sync"
)

// Task 為交給工作池執行的工作，ctx 在 Stop 後被取消
type Task func(ctx context.Context)

// Pool 背景工作池
type Pool interface {
	// Submit 排入工作；工作池已停止時回傳 false
	Submit(Task) bool
	Stop()
}

// queueFactor 決定每個 worker 可排隊的工作數
const queueFactor = 16

// NewPool 建立 n 個 worker 的工作池，n<=0 時為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{
		jobs:   make(chan Task, n*queueFactor),
		ctx:    ctx,
		cancel: cancel,
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job(p.ctx)
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	p.jobs <- t
	return true
}

// Stop 不再接受新工作，等待已排入的工作完成
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}

// Inline 在呼叫端 goroutine 直接執行工作，供測試與 CLI 使用
type Inline struct{}

func (Inline) Submit(t Task) bool {
	if t != nil {
		t(context.Background())
	}
	return true
}

func (Inline) Stop() {}
