package schema

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/x12/model"
)

// DecodeConfig carries the configuration surface that affects decoding:
// whether unknown segments / invalid fields abort the parse (strict) or
// downgrade to a warning diagnostic and a null-field substitute (lenient),
// and the two-digit year pivot used for 6-digit ISA dates.
type DecodeConfig struct {
	StrictMode    bool
	CenturyPivot  int // default 50: years < pivot are 20xx, else 19xx
}

// DefaultCenturyPivot is used when DecodeConfig.CenturyPivot is left zero.
const DefaultCenturyPivot = 50

func (c DecodeConfig) pivot() int {
	if c.CenturyPivot == 0 {
		return DefaultCenturyPivot
	}
	return c.CenturyPivot
}

func (c DecodeConfig) severity() model.Severity {
	if c.StrictMode {
		return model.SeverityFatal
	}
	return model.SeverityWarning
}

// Decode applies the Table's schema for raw.Name to produce a typed
// model.Segment (§4.C). It never returns a nil Segment; decoding failures
// are reported via the returned diagnostics and, for lenient mode,
// substituted with null field values so processing may continue.
func Decode(raw model.RawSegment, delims model.Delimiters, table Table, cfg DecodeConfig) (model.Segment, []*model.Error) {
	seg := model.Segment{
		Name:   raw.Name,
		Index:  raw.Index,
		Delims: delims,
		Raw:    raw.Fields,
	}

	segSchema, ok := table.Lookup(raw.Name)
	if !ok {
		return seg, []*model.Error{{
			Kind:         model.KindUnknownSegment,
			Severity:     cfg.severity(),
			SegmentIndex: raw.Index,
			SegmentName:  raw.Name,
			Message:      "no schema registered for segment",
		}}
	}

	var diags []*model.Error
	fields := make([]model.Field, len(segSchema.Fields))

	for i, fs := range segSchema.Fields {
		pos := i + 1
		var rawField model.RawField
		if pos <= len(raw.Fields) {
			rawField = raw.Fields[pos-1]
		}

		if fs.Required && rawField.Empty() {
			diags = append(diags, &model.Error{
				Kind:         model.KindMissingRequiredField,
				Severity:     cfg.severity(),
				SegmentIndex: raw.Index,
				SegmentName:  raw.Name,
				Message:      "required field " + strconv.Itoa(pos) + " is missing",
			})
			fields[i] = model.Field{Repetitions: []model.Value{model.NullValue()}}
			continue
		}

		if rawField.Empty() {
			fields[i] = model.Field{Repetitions: []model.Value{model.NullValue()}}
			continue
		}

		reps := rawField.Repetitions
		values := make([]model.Value, 0, len(reps))
		for _, rep := range reps {
			v, err := decodeRepetition(rep, fs, cfg)
			if err != nil {
				err.SegmentIndex = raw.Index
				err.SegmentName = raw.Name
				diags = append(diags, err)
				v = model.NullValue()
			}
			values = append(values, v)
		}
		fields[i] = model.Field{Repetitions: values}
	}

	seg.Fields = fields
	return seg, diags
}

// decodeRepetition decodes a single repetition (an ordered list of
// component strings) against a field schema.
func decodeRepetition(rep []string, fs FieldSchema, cfg DecodeConfig) (model.Value, *model.Error) {
	if fs.IsComponentField {
		comps := make([]model.Value, len(rep))
		for i, raw := range rep {
			var cs FieldSchema
			if i < len(fs.Components) {
				cs = fs.Components[i]
			} else {
				cs = FieldSchema{Type: model.TypeString}
			}
			v, err := decodeScalar(raw, cs, cfg)
			if err != nil {
				return model.NullValue(), err
			}
			comps[i] = v
		}
		return model.Value{Type: model.TypeComposite, Components: comps}, nil
	}

	raw := ""
	if len(rep) > 0 {
		raw = rep[0]
	}
	return decodeScalar(raw, fs, cfg)
}

// decodeScalar decodes a single scalar string per its field schema's
// semantic type, per the rules enumerated in §4.C.
func decodeScalar(raw string, fs FieldSchema, cfg DecodeConfig) (model.Value, *model.Error) {
	if raw == "" {
		return model.NullValue(), nil
	}

	if fs.MinLen > 0 && len(raw) < fs.MinLen || fs.MaxLen > 0 && len(raw) > fs.MaxLen {
		return model.NullValue(), &model.Error{
			Kind:     model.KindBadLength,
			Severity: cfg.severity(),
			Message:  "value " + strconv.Quote(raw) + " violates length constraints",
		}
	}

	switch fs.Type {
	case model.TypeString:
		return model.Value{Type: model.TypeString, Str: raw}, nil

	case model.TypeEnum:
		for _, allowed := range fs.Enum {
			if raw == allowed {
				return model.Value{Type: model.TypeEnum, Str: raw}, nil
			}
		}
		return model.NullValue(), &model.Error{
			Kind:     model.KindBadEnum,
			Severity: cfg.severity(),
			Message:  "value " + strconv.Quote(raw) + " is not in the enumerated set",
		}

	case model.TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.NullValue(), &model.Error{
				Kind:     model.KindBadNumeric,
				Severity: cfg.severity(),
				Message:  "value " + strconv.Quote(raw) + " is not a valid integer",
				Cause:    err,
			}
		}
		return model.Value{Type: model.TypeInteger, Int: n}, nil

	case model.TypeDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return model.NullValue(), &model.Error{
				Kind:     model.KindBadNumeric,
				Severity: cfg.severity(),
				Message:  "value " + strconv.Quote(raw) + " is not a valid decimal",
				Cause:    err,
			}
		}
		return model.Value{Type: model.TypeDecimal, Dec: d}, nil

	case model.TypeDate:
		t, err := DecodeDate(raw, cfg.pivot())
		if err != nil {
			return model.NullValue(), &model.Error{
				Kind:     model.KindBadDate,
				Severity: cfg.severity(),
				Message:  "value " + strconv.Quote(raw) + " is not a valid date",
				Cause:    err,
			}
		}
		return model.Value{Type: model.TypeDate, Time: t}, nil

	case model.TypeDateTime:
		t, err := DecodeDateTime(raw)
		if err != nil {
			return model.NullValue(), &model.Error{
				Kind:     model.KindBadDate,
				Severity: cfg.severity(),
				Message:  "value " + strconv.Quote(raw) + " is not a valid datetime",
				Cause:    err,
			}
		}
		return model.Value{Type: model.TypeDateTime, Time: t}, nil

	case model.TypeTimeString:
		if _, err := DecodeTimeString(raw); err != nil {
			return model.NullValue(), &model.Error{
				Kind:     model.KindBadDate,
				Severity: cfg.severity(),
				Message:  "value " + strconv.Quote(raw) + " is not a valid 4 or 6 digit time",
				Cause:    err,
			}
		}
		return model.Value{Type: model.TypeTimeString, Str: raw}, nil

	default:
		return model.Value{Type: model.TypeString, Str: raw}, nil
	}
}

// DecodeDate implements §4.C's date decoding: an 8-digit value is a plain
// YYYYMMDD date; a 6-digit value is the ISA interchange's YYMMDD form, with
// the century inferred from pivot (years < pivot are 20xx, else 19xx).
// Exported so callers decoding a standalone date string (e.g. the
// supplemented version/date tooling of §2.3) don't need a full segment
// decode to get the same behavior.
func DecodeDate(raw string, pivot int) (time.Time, error) {
	switch len(raw) {
	case 8:
		return time.Parse("20060102", raw)
	case 6:
		yy, err := strconv.Atoi(raw[:2])
		if err != nil {
			return time.Time{}, err
		}
		century := "19"
		if yy < pivot {
			century = "20"
		}
		return time.Parse("20060102", century+raw)
	default:
		return time.Time{}, &model.Error{Kind: model.KindBadDate, Message: "date must be 6 or 8 digits"}
	}
}

// DecodeDateTime decodes a 12-digit CCYYMMDDHHMM datetime, the §4.C
// DateTime type.
func DecodeDateTime(raw string) (time.Time, error) {
	if len(raw) != 12 {
		return time.Time{}, &model.Error{Kind: model.KindBadDate, Message: "datetime must be 12 digits"}
	}
	return time.Parse("200601021504", raw)
}

// DecodeTimeString validates a 4-digit (HHMM) or 6-digit (HHMMSS) time
// value, the §4.C TimeString type. Unlike Date and DateTime, TimeString
// values are retained as their original wire string rather than parsed
// into a time.Time, since an X12 time has no associated date to anchor it
// to; DecodeTimeString exists to validate the shape and report a
// consistent error.
func DecodeTimeString(raw string) (string, error) {
	if len(raw) != 4 && len(raw) != 6 {
		return "", &model.Error{Kind: model.KindBadDate, Message: "time must be 4 or 6 digits"}
	}
	return raw, nil
}
