package storage

import (
	"time"
)

type (
	// OperationMetrics records the outcome of a single store operation.
	OperationMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedProvider wraps a Provider and reports every call to OperationMetrics.
type ObservedProvider struct {
	provider Provider
	metrics  OperationMetrics
}

func NewObservedProvider(provider Provider, metrics OperationMetrics) *ObservedProvider {
	return &ObservedProvider{
		provider: provider,
		metrics:  metrics,
	}
}

func (o *ObservedProvider) Get(key []byte) (value []byte, err error) {
	started := time.Now()
	defer func() {
		// a miss is an answer, not a failure
		if err == ErrNotFound {
			o.metrics.Observe("get", nil, started)
			return
		}
		o.metrics.Observe("get", err, started)
	}()
	return o.provider.Get(key)
}

func (o *ObservedProvider) Put(key, value []byte) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("put", err, started)
	}()
	return o.provider.Put(key, value)
}

func (o *ObservedProvider) Delete(key []byte) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("delete", err, started)
	}()
	return o.provider.Delete(key)
}

func (o *ObservedProvider) Has(key []byte) (ok bool, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("has", err, started)
	}()
	return o.provider.Has(key)
}

func (o *ObservedProvider) Iterate(fn func(key, value []byte) error) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("iterate", err, started)
	}()
	return o.provider.Iterate(fn)
}

func (o *ObservedProvider) NewBatch() Batch {
	return &observedBatch{batch: o.provider.NewBatch(), metrics: o.metrics}
}

func (o *ObservedProvider) Flush() (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("flush", err, started)
	}()
	return o.provider.Flush()
}

func (o *ObservedProvider) Close() error {
	return o.provider.Close()
}

type observedBatch struct {
	batch   Batch
	metrics OperationMetrics
}

func (b *observedBatch) Put(key, value []byte) { b.batch.Put(key, value) }
func (b *observedBatch) Delete(key []byte)     { b.batch.Delete(key) }
func (b *observedBatch) Len() int              { return b.batch.Len() }

func (b *observedBatch) Write() (err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("batch_write", err, started)
	}()
	return b.batch.Write()
}
