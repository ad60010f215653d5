package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metric label names
const (
	LabelVariant    = "variant"
	LabelCapability = "capability"
	LabelCondition  = "condition"
	LabelSensor     = "sensor"
	LabelCode       = "code"
	LabelName       = "name"
	LabelActionType = "action_type"
	LabelStep       = "step"
	LabelOutcome    = "outcome"
	LabelChannel    = "channel"
	LabelRack       = "rack"
	LabelFamily     = "family"
)

// MetricSet holds all Prometheus metric descriptors for the Cytomat exporter.
type MetricSet struct {
	// Device metrics
	info       *prometheus.Desc
	capability *prometheus.Desc
	rackSlots  *prometheus.Desc
	rackPitch  *prometheus.Desc

	// Register metrics
	condition         *prometheus.Desc
	warningCode       *prometheus.Desc
	errorCode         *prometheus.Desc
	sensor            *prometheus.Desc
	actionType        *prometheus.Desc
	swapPosition      *prometheus.Desc
	gateOccupied      *prometheus.Desc
	processorOccupied *prometheus.Desc
	lastUpdateUnix    *prometheus.Desc

	// Incubation metrics
	incubationNominal *prometheus.Desc
	incubationActual  *prometheus.Desc

	// Event counters
	actionOutcomes *prometheus.CounterVec
	decodeErrors   *prometheus.CounterVec
}

// newMetricSet creates all metric descriptors. The variant is a constant label.
func newMetricSet(variant string) *MetricSet {
	constLabels := prometheus.Labels{LabelVariant: variant}

	return &MetricSet{
		// Device metrics
		info: prometheus.NewDesc(
			"cytomat_info",
			"Configured Cytomat variant (always 1)",
			nil, constLabels,
		),
		capability: prometheus.NewDesc(
			"cytomat_capability",
			"Capabilities of the variant (1 supported, 0 not supported)",
			[]string{LabelCapability}, constLabels,
		),
		rackSlots: prometheus.NewDesc(
			"cytomat_rack_slots",
			"Number of plate locations in the rack",
			[]string{LabelRack}, constLabels,
		),
		rackPitch: prometheus.NewDesc(
			"cytomat_rack_pitch",
			"Distance between two plate locations in the rack",
			[]string{LabelRack}, constLabels,
		),

		// Register metrics
		condition: prometheus.NewDesc(
			"cytomat_overview_condition",
			"Overview register bits (1 set, 0 clear)",
			[]string{LabelCondition}, constLabels,
		),
		warningCode: prometheus.NewDesc(
			"cytomat_warning_code",
			"Last warning register code read (1 for the current code)",
			[]string{LabelCode, LabelName}, constLabels,
		),
		errorCode: prometheus.NewDesc(
			"cytomat_error_code",
			"Last error register code read (1 for the current code)",
			[]string{LabelCode, LabelName}, constLabels,
		),
		sensor: prometheus.NewDesc(
			"cytomat_sensor",
			"Sensor register bits (1 set, 0 clear)",
			[]string{LabelSensor}, constLabels,
		),
		actionType: prometheus.NewDesc(
			"cytomat_action_type",
			"Last action type reported (1 for the current type)",
			[]string{LabelActionType}, constLabels,
		),
		swapPosition: prometheus.NewDesc(
			"cytomat_swap_station_position",
			"Plate of the swap station in front of the automatic gate (1 or 2)",
			nil, constLabels,
		),
		gateOccupied: prometheus.NewDesc(
			"cytomat_gate_occupied",
			"Position in front of the gate occupied (0/1)",
			nil, constLabels,
		),
		processorOccupied: prometheus.NewDesc(
			"cytomat_processor_occupied",
			"Processor position occupied (0/1)",
			nil, constLabels,
		),
		lastUpdateUnix: prometheus.NewDesc(
			"cytomat_last_update_unix",
			"Time of the last decoded register value (unix seconds)",
			nil, constLabels,
		),

		// Incubation metrics
		incubationNominal: prometheus.NewDesc(
			"cytomat_incubation_nominal",
			"Nominal incubation value reported by the device",
			[]string{LabelChannel}, constLabels,
		),
		incubationActual: prometheus.NewDesc(
			"cytomat_incubation_actual",
			"Actual incubation value reported by the device",
			[]string{LabelChannel}, constLabels,
		),

		// Event counters
		actionOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cytomat_action_outcomes_total",
			Help:        "Action replies by step and outcome",
			ConstLabels: constLabels,
		}, []string{LabelStep, LabelOutcome}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cytomat_decode_errors_total",
			Help:        "Feed values that could not be decoded, by register family or incubation",
			ConstLabels: constLabels,
		}, []string{LabelFamily}),
	}
}
