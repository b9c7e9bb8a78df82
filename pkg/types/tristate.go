package types

import (
	"bytes"
	"fmt"

	"github.com/m04kA/Mercearia-ReservationService/pkg/ptr"
)

// Tristate результат проверки: неизвестно / да / нет
// В JSON сериализуется как null / true / false
type Tristate int8

const (
	Unknown Tristate = iota
	Yes
	No
)

// TristateOf конвертирует bool в Tristate
func TristateOf(b bool) Tristate {
	if b {
		return Yes
	}
	return No
}

// TristateFromPtr конвертирует *bool в Tristate (nil -> Unknown)
func TristateFromPtr(b *bool) Tristate {
	if b == nil {
		return Unknown
	}
	return TristateOf(*b)
}

// IsKnown возвращает true, если значение было проверено
func (t Tristate) IsKnown() bool {
	return t == Yes || t == No
}

// IsYes возвращает true только для явного "да"
func (t Tristate) IsYes() bool {
	return t == Yes
}

// IsNo возвращает true только для явного "нет"
func (t Tristate) IsNo() bool {
	return t == No
}

// Ptr возвращает *bool (nil для Unknown)
func (t Tristate) Ptr() *bool {
	switch t {
	case Yes:
		return ptr.Ptr(true)
	case No:
		return ptr.Ptr(false)
	default:
		return nil
	}
}

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// MarshalJSON реализует json.Marshaler
func (t Tristate) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *Tristate) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*t = Yes
	case "false":
		*t = No
	case "null":
		*t = Unknown
	default:
		return fmt.Errorf("tristate: unexpected value %s", string(data))
	}
	return nil
}
