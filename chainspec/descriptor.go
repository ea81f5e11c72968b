// Package chainspec describes a network: its name and identifier, how
// nodes find each other, the token properties shown to clients and the
// genesis document the network starts from.
//
// The genesis document is produced by a Builder that is invoked only when
// the document is actually needed, so descriptors for every known network
// can be listed without paying for their genesis.
package chainspec

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-storage-chain/genesis"
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

// Builder produces the genesis document of a network. It must be pure:
// every call returns a structurally equal document.
type Builder func() (*genesis.Document, error)

// Properties are the token properties advertised to clients.
type Properties struct {
	TokenDecimals uint8  `json:"tokenDecimals"`
	TokenSymbol   string `json:"tokenSymbol"`
}

// NewProperties returns the properties of a token.
func NewProperties(decimals uint8, symbol string) Properties {
	return Properties{TokenDecimals: decimals, TokenSymbol: symbol}
}

// TelemetryEndpoint is a telemetry URL with the verbosity sent to it.
type TelemetryEndpoint struct {
	URL       string
	Verbosity uint8
}

// MarshalJSON renders the endpoint as a [url, verbosity] pair.
func (e TelemetryEndpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.URL, e.Verbosity})
}

// Descriptor is a network descriptor. Fields are fixed at construction.
type Descriptor struct {
	name       string
	id         string
	chainType  ChainType
	bootnodes  []string
	telemetry  []TelemetryEndpoint
	protocolID string
	properties *Properties
	extensions map[string]interface{}
	builder    Builder
}

// Option sets an optional descriptor field.
type Option func(*Descriptor)

// WithBootnodes sets the multiaddresses new nodes dial first.
func WithBootnodes(addrs ...string) Option {
	return func(d *Descriptor) {
		d.bootnodes = append([]string(nil), addrs...)
	}
}

// WithTelemetry adds telemetry endpoints.
func WithTelemetry(endpoints ...TelemetryEndpoint) Option {
	return func(d *Descriptor) {
		d.telemetry = append(d.telemetry, endpoints...)
	}
}

// WithProtocolID sets the network protocol id.
func WithProtocolID(id string) Option {
	return func(d *Descriptor) {
		d.protocolID = id
	}
}

// WithProperties sets the token properties.
func WithProperties(p Properties) Option {
	return func(d *Descriptor) {
		d.properties = &p
	}
}

// WithExtensions attaches client-specific fields. They are rendered at the
// top level of the JSON form and must not shadow the standard fields.
func WithExtensions(ext map[string]interface{}) Option {
	return func(d *Descriptor) {
		if d.extensions == nil {
			d.extensions = make(map[string]interface{}, len(ext))
		}
		for k, v := range ext {
			d.extensions[k] = v
		}
	}
}

// New returns a descriptor. The builder is not invoked.
func New(name, id string, chainType ChainType, builder Builder, opts ...Option) *Descriptor {
	d := &Descriptor{
		name:      name,
		id:        id,
		chainType: chainType,
		bootnodes: []string{},
		builder:   builder,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name is the human-readable network name.
func (d *Descriptor) Name() string {
	return d.name
}

// ID is the machine identifier of the network.
func (d *Descriptor) ID() string {
	return d.id
}

// ChainType tells what kind of network this is.
func (d *Descriptor) ChainType() ChainType {
	return d.chainType
}

// ProtocolID is the network protocol id, empty when unset.
func (d *Descriptor) ProtocolID() string {
	return d.protocolID
}

// Bootnodes returns a copy of the boot node list.
func (d *Descriptor) Bootnodes() []string {
	return append([]string{}, d.bootnodes...)
}

// Telemetry returns a copy of the telemetry endpoints.
func (d *Descriptor) Telemetry() []TelemetryEndpoint {
	return append([]TelemetryEndpoint(nil), d.telemetry...)
}

// Properties returns the token properties, if any.
func (d *Descriptor) Properties() (Properties, bool) {
	if d.properties == nil {
		return Properties{}, false
	}
	return *d.properties, true
}

// Extension returns a client-specific field.
func (d *Descriptor) Extension(key string) (interface{}, bool) {
	v, ok := d.extensions[key]
	return v, ok
}

// Genesis builds the genesis document. The builder runs on every call.
func (d *Descriptor) Genesis() (*genesis.Document, error) {
	if d.builder == nil {
		return nil, fmt.Errorf("chain %s: no genesis builder", d.id)
	}
	log.WithField("chain", d.id).Debug("Building genesis")
	doc, err := d.builder()
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", d.id, err)
	}
	return doc, nil
}

type genesisJSON struct {
	Runtime *genesis.Document `json:"runtime"`
}

type descriptorJSON struct {
	Name       string              `json:"name"`
	ID         string              `json:"id"`
	ChainType  ChainType           `json:"chainType"`
	Bootnodes  []string            `json:"bootNodes"`
	Telemetry  []TelemetryEndpoint `json:"telemetryEndpoints"`
	ProtocolID *string             `json:"protocolId"`
	Properties *Properties         `json:"properties"`
	Genesis    genesisJSON         `json:"genesis"`
}

// MarshalJSON renders the descriptor with its genesis document under
// genesis.runtime. Building the document is part of marshalling.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	doc, err := d.Genesis()
	if err != nil {
		return nil, err
	}

	enc := descriptorJSON{
		Name:       d.name,
		ID:         d.id,
		ChainType:  d.chainType,
		Bootnodes:  d.bootnodes,
		Telemetry:  d.telemetry,
		Properties: d.properties,
		Genesis:    genesisJSON{Runtime: doc},
	}
	if d.protocolID != "" {
		enc.ProtocolID = &d.protocolID
	}
	if enc.Bootnodes == nil {
		enc.Bootnodes = []string{}
	}

	data, err := json.Marshal(enc)
	if err != nil || len(d.extensions) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range d.extensions {
		if _, ok := fields[k]; ok {
			return nil, fmt.Errorf("chain %s: extension %q shadows a descriptor field", d.id, k)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("chain %s: extension %q: %w", d.id, k, err)
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}
