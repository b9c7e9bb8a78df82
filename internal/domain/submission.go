package domain

import "time"

// SubmissionPayload тело запроса на создание бронирования во внешнем сервисе
type SubmissionPayload struct {
	Timestamp       string         `json:"timestamp"`
	FormID          string         `json:"formId"`
	DadosPessoais   PersonalData   `json:"dadosPessoais"`
	TipoReserva     TypeDetails    `json:"tipoReserva"`
	DetalhesReserva BookingDetails `json:"detalhesReserva"`
}

// PersonalData персональные данные гостя
type PersonalData struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"dataNascimento"`
}

// TypeDetails тип бронирования и дополнительные опции
type TypeDetails struct {
	Tipo              ReservationType `json:"tipo"`
	ReservaPainel     bool            `json:"reservaPainel"`
	FotoPainel        *string         `json:"fotoPainel"`
	OrientacoesPainel *string         `json:"orientacoesPainel"`
	TipoCardapio      *string         `json:"tipoCardapio"`
	OrientacoesCompra *string         `json:"orientacoesCompra"`
}

// BookingDetails детали бронирования
type BookingDetails struct {
	QuantidadePessoas int      `json:"quantidadePessoas"`
	DataReserva       string   `json:"dataReserva"`
	HorarioDesejado   string   `json:"horarioDesejado"`
	LocalDesejado     Location `json:"localDesejado"`
	Observacoes       *string  `json:"observacoes"`
}

// NewSubmissionPayload собирает тело запроса из черновика
// Пустые необязательные поля передаются как null
func NewSubmissionPayload(draft ReservationDraft, formID string, now time.Time) SubmissionPayload {
	return SubmissionPayload{
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		FormID:    formID,
		DadosPessoais: PersonalData{
			Nome:           draft.Nome,
			Email:          draft.Email,
			Telefone:       draft.Telefone,
			DataNascimento: draft.DataNascimento,
		},
		TipoReserva: TypeDetails{
			Tipo:              draft.TipoReserva,
			ReservaPainel:     draft.ReservaPainel,
			FotoPainel:        nullable(draft.FotoPainel),
			OrientacoesPainel: nullable(draft.OrientacoesPainel),
			TipoCardapio:      nullable(string(draft.TipoCardapio)),
			OrientacoesCompra: nullable(draft.OrientacoesCompra),
		},
		DetalhesReserva: BookingDetails{
			QuantidadePessoas: draft.QuantidadePessoas,
			DataReserva:       draft.DataReserva,
			HorarioDesejado:   draft.HorarioDesejado,
			LocalDesejado:     draft.LocalDesejado,
			Observacoes:       nullable(draft.Observacoes),
		},
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SubmissionResult результат отправки бронирования
// Success=true и Offline=true означает, что данные сохранены в офлайн очереди
type SubmissionResult struct {
	Success bool   `json:"success"`
	Offline bool   `json:"offline"`
	Message string `json:"message"`
	FormID  string `json:"formId"`
}

// OfflineReservationEntry отправка, которая ещё не доставлена во внешний сервис
type OfflineReservationEntry struct {
	ID               int64             `json:"id"`
	FormID           string            `json:"formId"`
	Payload          SubmissionPayload `json:"payload"`
	OfflineTimestamp time.Time         `json:"offlineTimestamp"`
}
