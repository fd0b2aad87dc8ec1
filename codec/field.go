package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/relayspeak/tscommands/ts"
)

// Epoch bounds for absolute timestamps: 0001-01-01T00:00:00Z through
// 9999-12-31T23:59:59Z. Values outside fail conversion.
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// validateGoField checks that a record's Go field can hold values of a kind.
// Mirrors the binding checks the compiler performs for every declared param.
func validateGoField(k Kind, goType reflect.Type) (ok bool, want string) {
	switch k {
	case KindBool:
		return goType.Kind() == reflect.Bool, "bool"
	case KindI8:
		return goType.Kind() == reflect.Int8, "int8"
	case KindU8:
		return goType.Kind() == reflect.Uint8, "uint8"
	case KindI16:
		return goType.Kind() == reflect.Int16, "int16"
	case KindU16:
		return goType.Kind() == reflect.Uint16, "uint16"
	case KindI32:
		return goType.Kind() == reflect.Int32, "int32"
	case KindU32:
		return goType.Kind() == reflect.Uint32, "uint32"
	case KindI64:
		return goType.Kind() == reflect.Int64, "int64"
	case KindU64:
		return goType.Kind() == reflect.Uint64, "uint64"
	case KindF32:
		return goType.Kind() == reflect.Float32, "float32"
	case KindF64:
		return goType.Kind() == reflect.Float64, "float64"
	case KindStr:
		return goType.Kind() == reflect.String, "string"
	case KindUID:
		return goType.Kind() == reflect.String, "ts.UID"
	case KindClientID:
		return goType.Kind() == reflect.Uint16, "ts.ClientID"
	case KindClientDBID:
		return goType.Kind() == reflect.Uint64, "ts.ClientDBID"
	case KindChannelID:
		return goType.Kind() == reflect.Uint64, "ts.ChannelID"
	case KindServerGroupID:
		return goType.Kind() == reflect.Uint64, "ts.ServerGroupID"
	case KindChannelGroupID:
		return goType.Kind() == reflect.Uint64, "ts.ChannelGroupID"
	case KindIconHash:
		return goType.Kind() == reflect.Int32, "ts.IconHash"
	case KindTextTarget, KindHostMessageMode, KindReason, KindCodec, KindPermission, KindError:
		return goType.Kind() == reflect.Uint32, "uint32 enum"
	case KindDuration:
		return goType.Kind() == reflect.Int64, "ts.Duration"
	case KindDateTime:
		return goType == reflect.TypeOf(time.Time{}), "time.Time"
	}
	return false, "unsupported"
}

// parseScalarInto converts one wire token and stores it in dst. The returned
// error is the raw conversion failure; callers wrap it with message and
// field context.
func parseScalarInto(dst reflect.Value, k Kind, unit durationUnit, raw string) error {
	switch k {
	case KindBool:
		switch raw {
		case "0":
			dst.SetBool(false)
		case "1":
			dst.SetBool(true)
		default:
			return fmt.Errorf("boolean token must be 0 or 1, got %q", raw)
		}
		return nil

	case KindI8, KindI16, KindI32, KindI64:
		v, err := strconv.ParseInt(raw, 10, intBits(k))
		if err != nil {
			return err
		}
		dst.SetInt(v)
		return nil

	case KindU8, KindU16, KindU32, KindU64:
		v, err := strconv.ParseUint(raw, 10, intBits(k))
		if err != nil {
			return err
		}
		dst.SetUint(v)
		return nil

	case KindF32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		dst.SetFloat(v)
		return nil

	case KindF64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		dst.SetFloat(v)
		return nil

	case KindStr, KindUID:
		dst.SetString(raw)
		return nil

	case KindClientID:
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return err
		}
		dst.SetUint(v)
		return nil

	case KindClientDBID, KindChannelID, KindServerGroupID, KindChannelGroupID:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		dst.SetUint(v)
		return nil

	case KindIconHash:
		// Raw bit truncation of the 64-bit wire value into 32 bits. The
		// narrowing is deliberately unchecked; magnitudes above 2^32 lose
		// their high bits on the wire and stay lost here.
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		dst.SetInt(int64(ts.IconHashFromWire(v)))
		return nil

	case KindTextTarget, KindHostMessageMode, KindReason, KindCodec, KindPermission, KindError:
		code64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return err
		}
		code := uint32(code64)
		if !enumCodeValid(k, code) {
			return fmt.Errorf("no %s variant for code %d", k, code)
		}
		dst.SetUint(uint64(code))
		return nil

	case KindDuration:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		switch unit {
		case unitSeconds:
			d, ok := ts.DurationFromSeconds(v)
			if !ok {
				return fmt.Errorf("duration %d seconds overflows", v)
			}
			dst.SetInt(d.Milliseconds())
		case unitMilliseconds:
			dst.SetInt(ts.DurationFromMillis(v).Milliseconds())
		default:
			// Unit-less duration fields are rejected at generation time.
			return fmt.Errorf("duration field without unit")
		}
		return nil

	case KindDateTime:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		if v < minEpochSeconds || v > maxEpochSeconds {
			return fmt.Errorf("epoch seconds %d out of range", v)
		}
		dst.Set(reflect.ValueOf(time.Unix(v, 0).UTC()))
		return nil
	}

	return fmt.Errorf("no codec for kind %s", k)
}

func intBits(k Kind) int {
	switch k {
	case KindI8, KindU8:
		return 8
	case KindI16, KindU16:
		return 16
	case KindI32, KindU32:
		return 32
	default:
		return 64
	}
}

func enumCodeValid(k Kind, code uint32) bool {
	switch k {
	case KindTextTarget:
		_, ok := ts.TextMessageTargetModeFromCode(code)
		return ok
	case KindHostMessageMode:
		_, ok := ts.HostMessageModeFromCode(code)
		return ok
	case KindReason:
		_, ok := ts.ReasonFromCode(code)
		return ok
	case KindCodec:
		_, ok := ts.CodecFromCode(code)
		return ok
	case KindPermission:
		_, ok := ts.PermissionFromCode(code)
		return ok
	case KindError:
		_, ok := ts.ErrorFromCode(code)
		return ok
	}
	return false
}

// encodeScalar produces the wire text for one typed value. Serialization
// cannot fail: every value a record can hold has a decimal or verbatim form.
func encodeScalar(src reflect.Value, k Kind, unit durationUnit) string {
	switch k {
	case KindBool:
		if src.Bool() {
			return "1"
		}
		return "0"

	case KindI8, KindI16, KindI32, KindI64:
		return strconv.FormatInt(src.Int(), 10)

	case KindU8, KindU16, KindU32, KindU64:
		return strconv.FormatUint(src.Uint(), 10)

	case KindF32:
		return strconv.FormatFloat(src.Float(), 'f', -1, 32)

	case KindF64:
		return strconv.FormatFloat(src.Float(), 'f', -1, 64)

	case KindStr, KindUID:
		return src.String()

	case KindClientID, KindClientDBID, KindChannelID, KindServerGroupID, KindChannelGroupID:
		return strconv.FormatUint(src.Uint(), 10)

	case KindIconHash:
		return strconv.FormatUint(ts.IconHash(src.Int()).Wire(), 10)

	case KindTextTarget, KindHostMessageMode, KindReason, KindCodec, KindPermission, KindError:
		return strconv.FormatUint(src.Uint(), 10)

	case KindDuration:
		d := ts.Duration(src.Int())
		if unit == unitSeconds {
			return strconv.FormatInt(d.Seconds(), 10)
		}
		return strconv.FormatInt(d.Milliseconds(), 10)

	case KindDateTime:
		t := src.Interface().(time.Time)
		return strconv.FormatInt(t.Unix(), 10)
	}

	return ""
}

// parseList converts a space-separated sequence atomically: any failing
// token discards the whole slice.
func parseList(dst reflect.Value, k Kind, unit durationUnit, raw string) error {
	tokens := strings.Split(raw, " ")
	out := reflect.MakeSlice(dst.Type(), len(tokens), len(tokens))
	for i, tok := range tokens {
		if err := parseScalarInto(out.Index(i), k, unit, tok); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	dst.Set(out)
	return nil
}

// encodeList joins serialized elements with commas. Inbound sequences split
// on spaces, outbound join with commas; the mismatch is the existing wire
// contract and downstream consumers depend on it, so it stays. Empty string
// elements are skipped to avoid doubled separators.
func encodeList(src reflect.Value, k Kind, unit durationUnit) string {
	var b strings.Builder
	first := true
	for i := 0; i < src.Len(); i++ {
		s := encodeScalar(src.Index(i), k, unit)
		if k.IsString() && s == "" {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(s)
		first = false
	}
	return b.String()
}
