package domain

import (
	"fmt"
	"strings"
)

// Observation is a single named medical measurement, e.g. parent weight or
// blood pressure, recorded on a hospital-visit entry.
type Observation struct {
	Name  string
	Value string
}

// ObservationSet is an ordered collection of observations. Order is
// preserved through encode/decode.
type ObservationSet []Observation

// Get returns the value of the named observation.
func (s ObservationSet) Get(name string) (string, bool) {
	for _, o := range s {
		if o.Name == name {
			return o.Value, true
		}
	}
	return "", false
}

// Stored separators for the observation blob. Existing rows were written
// with these exact byte sequences; changing them breaks stored data.
const (
	ObservationRecordSep = " /seq "
	ObservationFieldSep  = " /split "
)

// ObservationCodec packs an ObservationSet into a single text value and
// back. The zero value is not usable; use DefaultObservationCodec or
// construct one with both separators set.
type ObservationCodec struct {
	RecordSep string
	FieldSep  string
}

// DefaultObservationCodec is the codec for the stored column format.
var DefaultObservationCodec = ObservationCodec{
	RecordSep: ObservationRecordSep,
	FieldSep:  ObservationFieldSep,
}

// Encode serializes the set to a single text value. The empty set encodes
// to the empty string. Names must be non-empty, and neither names nor
// values may contain a separator: the format has no escaping, so such
// input would corrupt the stored blob and is rejected here instead.
func (c ObservationCodec) Encode(set ObservationSet) (string, error) {
	if len(set) == 0 {
		return "", nil
	}

	chunks := make([]string, len(set))
	for i, o := range set {
		if o.Name == "" {
			return "", NewValidationError(fmt.Sprintf("observations[%d].name", i), "required")
		}
		if strings.Contains(o.Name, c.RecordSep) || strings.Contains(o.Name, c.FieldSep) {
			return "", NewValidationError(fmt.Sprintf("observations[%d].name", i), "contains reserved separator")
		}
		if strings.Contains(o.Value, c.RecordSep) || strings.Contains(o.Value, c.FieldSep) {
			return "", NewValidationError(fmt.Sprintf("observations[%d].value", i), "contains reserved separator")
		}
		chunks[i] = o.Name + c.FieldSep + o.Value
	}

	return strings.Join(chunks, c.RecordSep), nil
}

// Decode parses a stored blob back into an ObservationSet.
//
// A blob containing neither separator decodes to the empty set: that is the
// stored representation of "no observations", and also what legacy
// free-text values decode to. Otherwise the blob is split on the record
// separator and each chunk on the field separator exactly once; a chunk
// with no field separator means the blob is corrupt and decoding fails
// with ErrMalformedObservations.
func (c ObservationCodec) Decode(blob string) (ObservationSet, error) {
	if !strings.Contains(blob, c.RecordSep) && !strings.Contains(blob, c.FieldSep) {
		return ObservationSet{}, nil
	}

	chunks := strings.Split(blob, c.RecordSep)
	set := make(ObservationSet, 0, len(chunks))
	for _, chunk := range chunks {
		name, value, found := strings.Cut(chunk, c.FieldSep)
		if !found {
			return nil, fmt.Errorf("%w: chunk %q has no field separator", ErrMalformedObservations, chunk)
		}
		set = append(set, Observation{Name: name, Value: value})
	}

	return set, nil
}
