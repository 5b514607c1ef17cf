package decoder

import (
	"strings"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/abidecoder/codec"
	"github.com/cosmos/abidecoder/loader"
	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
)

// Lookup resolves a selector or topic key to its schema entry.
type Lookup interface {
	Lookup(key string) (types.SchemaEntry, bool)
}

// Decoder decodes call data and event logs against a registry. It only reads
// the registry, so a single Decoder is safe for concurrent use.
type Decoder struct {
	registry Lookup
	codec    codec.Codec
	logger   log.Logger
	metrics  *metrics.Metrics
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithCodec overrides the ABI codec.
func WithCodec(c codec.Codec) Option {
	return func(d *Decoder) {
		d.codec = c
	}
}

// WithLogger sets the decoder logger.
func WithLogger(logger log.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithMetrics reports counters to m instead of the global metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Decoder) {
		d.metrics = m
	}
}

// New returns a Decoder reading from reg.
func New(reg Lookup, opts ...Option) *Decoder {
	d := &Decoder{
		registry: reg,
		codec:    codec.EthCodec{},
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("module", "decoder")
	return d
}

// DecodeMethod decodes "0x"-prefixed call data. It returns nil without an
// error when the selector is not registered.
func (d *Decoder) DecodeMethod(data string) (*types.DecodedMethod, error) {
	end := len(types.HexPrefix) + types.SelectorHexLength
	if len(data) < end {
		d.incrCounter(metricMethod, metricUnknown)
		return nil, nil
	}

	selector := strings.ToLower(data[len(types.HexPrefix):end])
	entry, ok := d.registry.Lookup(selector)
	if !ok {
		d.logger.Debug("unknown method selector", "selector", selector)
		d.incrCounter(metricMethod, metricUnknown)
		return nil, nil
	}

	payload, err := codec.DecodeHex(data[end:])
	if err != nil {
		return nil, errorsmod.Wrapf(err, "method %s", entry.Name)
	}
	values, err := d.codec.DecodeParameters(entry.Inputs, payload)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "method %s", entry.Name)
	}
	if len(values) != len(entry.Inputs) {
		return nil, errorsmod.Wrapf(types.ErrCodec, "method %s: expected %d values, got %d", entry.Name, len(entry.Inputs), len(values))
	}

	params := make([]types.DecodedParam, len(entry.Inputs))
	for i, input := range entry.Inputs {
		value, err := normalize(callNormalizers, classifyCallType(input.Type), values[i])
		if err != nil {
			return nil, errorsmod.Wrapf(err, "method %s: parameter %q", entry.Name, input.Name)
		}
		params[i] = types.DecodedParam{Name: input.Name, Type: input.Type, Value: value}
	}

	d.incrCounter(metricMethod, metricMatched)
	return &types.DecodedMethod{Name: entry.Name, Params: params}, nil
}

// DecodeLogs decodes a batch of logs. Logs without topics are dropped from the
// result; logs whose topic is not registered yield a nil entry at their
// position. Any decode failure aborts the whole batch.
func (d *Decoder) DecodeLogs(logs []types.Log) ([]*types.DecodedEvent, error) {
	decoded := make([]*types.DecodedEvent, 0, len(logs))
	for i, l := range logs {
		if len(l.Topics) == 0 {
			d.incrCounter(metricLog, metricSkipped)
			continue
		}

		event, err := d.decodeLog(l)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "log %d", i)
		}
		decoded = append(decoded, event)
	}
	return decoded, nil
}

// DecodeEthLogs decodes go-ethereum log records.
func (d *Decoder) DecodeEthLogs(logs []*ethtypes.Log) ([]*types.DecodedEvent, error) {
	return d.DecodeLogs(loader.FromEthLogs(logs))
}

func (d *Decoder) decodeLog(l types.Log) (*types.DecodedEvent, error) {
	key := strings.ToLower(stripPrefix(l.Topics[0]))
	entry, ok := d.registry.Lookup(key)
	if !ok {
		d.logger.Debug("unknown event topic", "topic", l.Topics[0], "address", l.Address)
		d.incrCounter(metricLog, metricUnknown)
		return nil, nil
	}

	payload, err := codec.DecodeHex(stripPrefix(l.Data))
	if err != nil {
		return nil, errorsmod.Wrapf(err, "event %s", entry.Name)
	}
	data, err := d.codec.DecodeParameters(entry.NonIndexedInputs(), payload)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "event %s", entry.Name)
	}

	// topic 0 is the event key
	dataIndex, topicsIndex := 0, 1
	params := make([]types.DecodedParam, 0, len(entry.Inputs))
	for _, input := range entry.Inputs {
		var raw types.Value
		if input.Indexed {
			if topicsIndex >= len(l.Topics) {
				return nil, errorsmod.Wrapf(types.ErrCodec, "event %s: missing topic for indexed parameter %q", entry.Name, input.Name)
			}
			raw = types.NewScalar(l.Topics[topicsIndex])
			topicsIndex++
		} else {
			if dataIndex >= len(data) {
				return nil, errorsmod.Wrapf(types.ErrCodec, "event %s: missing data for parameter %q", entry.Name, input.Name)
			}
			raw = data[dataIndex]
			dataIndex++
		}

		value, err := normalize(logNormalizers, classifyLogType(input.Type), raw)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "event %s: parameter %q", entry.Name, input.Name)
		}
		params = append(params, types.DecodedParam{Name: input.Name, Type: input.Type, Value: value})
	}

	d.incrCounter(metricLog, metricMatched)
	return &types.DecodedEvent{Name: entry.Name, Events: params, Address: l.Address}, nil
}

// stripPrefix drops the first two characters, which are expected to be "0x".
func stripPrefix(s string) string {
	if len(s) < len(types.HexPrefix) {
		return ""
	}
	return s[len(types.HexPrefix):]
}
