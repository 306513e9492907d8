package vectorindex

import (
	"sync"
	"sync/atomic"
)

// GpuResources is a reference-counted handle to a device's GPU resources,
// shared by reference across every FaissGpuIndex that targets the same
// device — mirroring pkg/gpu.Manager's single-device-handle discipline in
// the teacher codebase, generalized to multiple indexes per device.
type GpuResources struct {
	deviceID uint32
	refCount int64
	mu       sync.Mutex
	released bool
}

// gpuResourcePool keys live GpuResources by device so indexes on the same
// device share one allocation, the way gpu.Manager is shared rather than
// re-probed per VectorIndex.
var (
	gpuResourcePoolMu sync.Mutex
	gpuResourcePool   = map[uint32]*GpuResources{}
)

// AcquireGpuResources returns the shared GpuResources for deviceID,
// allocating it on first use and incrementing its reference count.
func AcquireGpuResources(deviceID uint32) (*GpuResources, error) {
	gpuResourcePoolMu.Lock()
	defer gpuResourcePoolMu.Unlock()

	res, ok := gpuResourcePool[deviceID]
	if !ok {
		res = &GpuResources{deviceID: deviceID}
		gpuResourcePool[deviceID] = res
	}
	atomic.AddInt64(&res.refCount, 1)
	return res, nil
}

// Release decrements the reference count and frees the underlying device
// resources once the last sharer drops it.
func (r *GpuResources) Release() error {
	remaining := atomic.AddInt64(&r.refCount, -1)
	if remaining > 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	r.released = true

	gpuResourcePoolMu.Lock()
	if gpuResourcePool[r.deviceID] == r {
		delete(gpuResourcePool, r.deviceID)
	}
	gpuResourcePoolMu.Unlock()

	return nil
}

// DeviceID returns the device this resource handle targets.
func (r *GpuResources) DeviceID() uint32 { return r.deviceID }

// RefCount reports the current number of sharers, for tests and metrics.
func (r *GpuResources) RefCount() int64 { return atomic.LoadInt64(&r.refCount) }
