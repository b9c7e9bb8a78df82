package validation

import (
	"encoding/base64"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
)

var (
	phoneBRPattern = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	timePattern    = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type personalData struct {
	Nome           string `json:"nome" validate:"required,min=3"`
	Email          string `json:"email" validate:"required,email"`
	Telefone       string `json:"telefone" validate:"required,phone_br"`
	DataNascimento string `json:"dataNascimento" validate:"required,adult_age"`
}

type reservationDetails struct {
	TipoReserva       string `json:"tipoReserva" validate:"required,oneof=aniversario despedida_solteiro reuniao"`
	OrientacoesPainel string `json:"orientacoesPainel" validate:"max=500"`
	TipoCardapio      string `json:"tipoCardapio" validate:"omitempty,oneof=normal pacote_fechado"`
	OrientacoesCompra string `json:"orientacoesCompra" validate:"max=500"`
	QuantidadePessoas int    `json:"quantidadePessoas" validate:"min=4,max=50"`
	DataReserva       string `json:"dataReserva" validate:"required,not_past"`
	HorarioDesejado   string `json:"horarioDesejado" validate:"required,hhmm"`
	LocalDesejado     string `json:"localDesejado" validate:"required,oneof=proximo_play_salao proximo_palco_salao deck_lateral_fundo deck_lateral_palco area_externa_frente"`
	Observacoes       string `json:"observacoes" validate:"max=1000"`
}

// Validator проверка полей формы по шагам
type Validator struct {
	validate *validator.Validate
	location *time.Location
	now      func() time.Time
}

// New создает валидатор
// location временная зона заведения, в ней считаются возраст и "сегодня"
func New(location *time.Location) *Validator {
	if location == nil {
		location = time.Local
	}

	v := &Validator{
		validate: validator.New(),
		location: location,
		now:      time.Now,
	}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ошибки регистрации здесь означают опечатку в имени тега
	mustRegister(v.validate, "phone_br", func(fl validator.FieldLevel) bool {
		return phoneBRPattern.MatchString(fl.Field().String())
	})
	mustRegister(v.validate, "hhmm", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})
	mustRegister(v.validate, "adult_age", func(fl validator.FieldLevel) bool {
		return v.isAdult(fl.Field().String())
	})
	mustRegister(v.validate, "not_past", func(fl validator.FieldLevel) bool {
		return v.isNotPast(fl.Field().String())
	})

	return v
}

// WithClock подменяет источник времени
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// ValidateStep проверяет поля одного шага формы
// Шаг резюме проверяет всю форму
func (v *Validator) ValidateStep(draft domain.ReservationDraft, step int) error {
	switch step {
	case domain.StepPersonalData:
		return v.validatePersonalData(draft).orNil()
	case domain.StepReservationDetails:
		return v.validateReservationDetails(draft).orNil()
	default:
		return v.ValidateDraft(draft)
	}
}

// ValidateDraft проверяет всю форму перед отправкой
func (v *Validator) ValidateDraft(draft domain.ReservationDraft) error {
	result := v.validatePersonalData(draft)
	details := v.validateReservationDetails(draft)
	for field, msg := range details.FieldErrors {
		result.add(field, msg)
	}
	return result.orNil()
}

func (v *Validator) validatePersonalData(draft domain.ReservationDraft) *Error {
	result := &Error{}
	v.collect(result, personalData{
		Nome:           strings.TrimSpace(draft.Nome),
		Email:          strings.TrimSpace(draft.Email),
		Telefone:       draft.Telefone,
		DataNascimento: draft.DataNascimento,
	})
	return result
}

func (v *Validator) validateReservationDetails(draft domain.ReservationDraft) *Error {
	result := &Error{}
	v.collect(result, reservationDetails{
		TipoReserva:       string(draft.TipoReserva),
		OrientacoesPainel: draft.OrientacoesPainel,
		TipoCardapio:      string(draft.TipoCardapio),
		OrientacoesCompra: draft.OrientacoesCompra,
		QuantidadePessoas: draft.QuantidadePessoas,
		DataReserva:       draft.DataReserva,
		HorarioDesejado:   draft.HorarioDesejado,
		LocalDesejado:     string(draft.LocalDesejado),
		Observacoes:       draft.Observacoes,
	})

	// Поля панели обязательны, только если панель выбрана
	if draft.WantsPanel() {
		if draft.FotoPainel == "" {
			result.add("fotoPainel", msgFotoPainel)
		} else if size, err := decodedPhotoSize(draft.FotoPainel); err != nil {
			result.add("fotoPainel", msgFotoPainelInvalid)
		} else if size > domain.MaxPanelPhotoSizeBytes {
			result.add("fotoPainel", msgFotoPainelSize)
		}
		if strings.TrimSpace(draft.OrientacoesPainel) == "" {
			result.add("orientacoesPainel", msgOrientacoesPainel)
		}
	}

	return result
}

func (v *Validator) collect(result *Error, s interface{}) {
	err := v.validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.add("_", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		result.add(fe.Field(), messageFor(fe.Field(), fe.Tag()))
	}
}

// isAdult возраст с учетом дня рождения должен быть в пределах 18..120
func (v *Validator) isAdult(date string) bool {
	birth, err := domain.ParseDate(date, v.location)
	if err != nil {
		return false
	}
	today := v.now().In(v.location)

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age >= domain.MinAge && age <= domain.MaxAge
}

func (v *Validator) isNotPast(date string) bool {
	candidate, err := domain.ParseDate(date, v.location)
	if err != nil {
		return false
	}
	today := domain.DateOnly(v.now().In(v.location))
	return !candidate.Before(today)
}

// decodedPhotoSize размер фото в байтах; принимается data URL или чистый base64
func decodedPhotoSize(photo string) (int, error) {
	data := photo
	if idx := strings.Index(photo, ";base64,"); idx >= 0 && strings.HasPrefix(photo, "data:") {
		data = photo[idx+len(";base64,"):]
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return 0, err
	}
	return len(decoded), nil
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
