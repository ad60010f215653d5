// Package collector implements the Prometheus collector interface for Cytomat devices.
package collector

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"cytomat_exporter/internal/capability"
	"cytomat_exporter/internal/registers"
	"cytomat_exporter/internal/types"
)

// CytomatCollector implements prometheus.Collector for one Cytomat device.
// Decoded register values are pushed in through the Observe methods and
// emitted on scrape.
type CytomatCollector struct {
	variant capability.Variant
	racks   []types.NamedRack
	logger  *slog.Logger
	metrics *MetricSet
	now     func() time.Time

	mu         sync.RWMutex
	status     *registers.DecodedStatus
	sensors    *registers.SensorState
	actionType registers.ActionType
	swap       registers.SwapStationPosition
	gate       *registers.GateLoadStatus
	processor  *registers.ProcessorLoadStatus
	incubation map[string]types.IncubationReading
	lastUpdate time.Time
}

// NewCytomatCollector creates a new collector for the given variant and racks.
func NewCytomatCollector(variant capability.Variant, racks []types.NamedRack, logger *slog.Logger) *CytomatCollector {
	return &CytomatCollector{
		variant:    variant,
		racks:      racks,
		logger:     logger,
		metrics:    newMetricSet(variant.String()),
		now:        time.Now,
		incubation: make(map[string]types.IncubationReading),
	}
}

// ObserveStatus records a decoded overview status, replacing the previous one.
func (c *CytomatCollector) ObserveStatus(s registers.DecodedStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = &s
	c.touch()

	if s.Busy() && s.Ready() {
		c.logger.Debug("Device reports busy and ready", "status", s.String())
	}
	if s.Error != "" && s.Error != registers.ErrorNone {
		c.logger.Warn("Device error register set", "code", string(s.Error), "name", s.Error.String())
	}
	if s.Warning != "" && s.Warning != registers.WarningNone {
		c.logger.Info("Device warning register set", "code", string(s.Warning), "name", s.Warning.String())
	}
}

// ObserveSensors records the sensor register.
func (c *CytomatCollector) ObserveSensors(s registers.SensorState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sensors = &s
	c.touch()
}

// ObserveAction counts the reply to one action step.
func (c *CytomatCollector) ObserveAction(step registers.ActionStep, outcome types.ActionOutcome) {
	c.metrics.actionOutcomes.WithLabelValues(step.String(), outcome.String()).Inc()
	if !outcome.Succeeded() {
		c.logger.Warn("Action step failed", "step", step.String())
	}

	c.mu.Lock()
	c.touch()
	c.mu.Unlock()
}

// ObserveActionType records the current action type.
func (c *CytomatCollector) ObserveActionType(t registers.ActionType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actionType = t
	c.touch()
}

// ObserveSwapStation records the swap station position.
func (c *CytomatCollector) ObserveSwapStation(p registers.SwapStationPosition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap = p
	c.touch()
}

// ObserveGateLoad records the load state in front of the gate.
func (c *CytomatCollector) ObserveGateLoad(s registers.GateLoadStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gate = &s
	c.touch()
}

// ObserveProcessorLoad records the load state at the processor.
func (c *CytomatCollector) ObserveProcessorLoad(s registers.ProcessorLoadStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processor = &s
	c.touch()
}

// ObserveIncubation records a nominal/actual pair for a climate channel.
func (c *CytomatCollector) ObserveIncubation(channel string, r types.IncubationReading) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.incubation[channel] = r
	c.touch()
}

// ObserveDecodeError counts a raw token that could not be decoded.
func (c *CytomatCollector) ObserveDecodeError(family registers.Family, err error) {
	c.metrics.decodeErrors.WithLabelValues(family.String()).Inc()
	c.logger.Warn("Failed to decode register value", "family", family.String(), "error", err)
}

// touch must be called with mu held for writing.
func (c *CytomatCollector) touch() {
	c.lastUpdate = c.now()
}

// Describe implements prometheus.Collector.
func (c *CytomatCollector) Describe(ch chan<- *prometheus.Desc) {
	// Device metrics
	ch <- c.metrics.info
	ch <- c.metrics.capability
	ch <- c.metrics.rackSlots
	ch <- c.metrics.rackPitch

	// Register metrics
	ch <- c.metrics.condition
	ch <- c.metrics.warningCode
	ch <- c.metrics.errorCode
	ch <- c.metrics.sensor
	ch <- c.metrics.actionType
	ch <- c.metrics.swapPosition
	ch <- c.metrics.gateOccupied
	ch <- c.metrics.processorOccupied
	ch <- c.metrics.lastUpdateUnix

	// Incubation metrics
	ch <- c.metrics.incubationNominal
	ch <- c.metrics.incubationActual

	// Event counters
	c.metrics.actionOutcomes.Describe(ch)
	c.metrics.decodeErrors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *CytomatCollector) Collect(ch chan<- prometheus.Metric) {
	c.emitDeviceMetrics(ch)

	c.mu.RLock()
	c.emitStatusMetrics(ch)
	c.emitSensorMetrics(ch)
	c.emitTransferMetrics(ch)
	c.emitIncubationMetrics(ch)
	if !c.lastUpdate.IsZero() {
		ch <- prometheus.MustNewConstMetric(c.metrics.lastUpdateUnix, prometheus.GaugeValue, float64(c.lastUpdate.Unix()))
	}
	c.mu.RUnlock()

	c.metrics.actionOutcomes.Collect(ch)
	c.metrics.decodeErrors.Collect(ch)
}

// emitDeviceMetrics emits the static variant, capability and rack metrics.
func (c *CytomatCollector) emitDeviceMetrics(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.metrics.info, prometheus.GaugeValue, 1)

	caps := capability.CapabilitiesOf(c.variant)
	for _, cp := range capability.All() {
		ch <- prometheus.MustNewConstMetric(c.metrics.capability, prometheus.GaugeValue, boolValue(caps.Supports(cp)), cp.String())
	}

	for _, r := range c.racks {
		ch <- prometheus.MustNewConstMetric(c.metrics.rackSlots, prometheus.GaugeValue, float64(r.Geometry.Slots), r.Name)
		ch <- prometheus.MustNewConstMetric(c.metrics.rackPitch, prometheus.GaugeValue, r.Geometry.Pitch, r.Name)
	}
}

// emitStatusMetrics emits overview bits and the attached warning/error codes.
func (c *CytomatCollector) emitStatusMetrics(ch chan<- prometheus.Metric) {
	if c.status == nil {
		return
	}
	s := *c.status

	for _, e := range registers.OverviewTable.Entries() {
		ch <- prometheus.MustNewConstMetric(c.metrics.condition, prometheus.GaugeValue, boolValue(s.Has(e.Code)), e.Name)
	}

	if s.Warning != "" {
		ch <- prometheus.MustNewConstMetric(c.metrics.warningCode, prometheus.GaugeValue, 1, string(s.Warning), s.Warning.String())
	}
	if s.Error != "" {
		ch <- prometheus.MustNewConstMetric(c.metrics.errorCode, prometheus.GaugeValue, 1, string(s.Error), s.Error.String())
	}
}

// emitSensorMetrics emits one series per sensor bit.
func (c *CytomatCollector) emitSensorMetrics(ch chan<- prometheus.Metric) {
	if c.sensors == nil {
		return
	}
	for _, e := range registers.SensorTable.Entries() {
		ch <- prometheus.MustNewConstMetric(c.metrics.sensor, prometheus.GaugeValue, boolValue(c.sensors.Has(e.Code)), e.Name)
	}
}

// emitTransferMetrics emits action type, swap station and load states.
func (c *CytomatCollector) emitTransferMetrics(ch chan<- prometheus.Metric) {
	if c.actionType != "" {
		ch <- prometheus.MustNewConstMetric(c.metrics.actionType, prometheus.GaugeValue, 1, c.actionType.String())
	}
	if c.swap != 0 {
		ch <- prometheus.MustNewConstMetric(c.metrics.swapPosition, prometheus.GaugeValue, float64(c.swap))
	}
	if c.gate != nil {
		ch <- prometheus.MustNewConstMetric(c.metrics.gateOccupied, prometheus.GaugeValue, boolValue(*c.gate == registers.GateOccupied))
	}
	if c.processor != nil {
		ch <- prometheus.MustNewConstMetric(c.metrics.processorOccupied, prometheus.GaugeValue, boolValue(*c.processor == registers.ProcessorOccupied))
	}
}

// emitIncubationMetrics emits nominal and actual values per channel.
func (c *CytomatCollector) emitIncubationMetrics(ch chan<- prometheus.Metric) {
	channels := make([]string, 0, len(c.incubation))
	for name := range c.incubation {
		channels = append(channels, name)
	}
	sort.Strings(channels)

	for _, name := range channels {
		r := c.incubation[name]
		ch <- prometheus.MustNewConstMetric(c.metrics.incubationNominal, prometheus.GaugeValue, r.Nominal, name)
		ch <- prometheus.MustNewConstMetric(c.metrics.incubationActual, prometheus.GaugeValue, r.Actual, name)
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
