package domain

import "time"

// ReservationType тип бронирования
type ReservationType string

const (
	TypeBirthday        ReservationType = "aniversario"
	TypeBachelorParty   ReservationType = "despedida_solteiro"
	TypeFamilyGathering ReservationType = "reuniao"
)

// SupportsPanel возвращает true для типов, к которым можно добавить панель
func (t ReservationType) SupportsPanel() bool {
	return t == TypeBirthday || t == TypeBachelorParty
}

// IsValid проверяет, что тип известен
func (t ReservationType) IsValid() bool {
	switch t {
	case TypeBirthday, TypeBachelorParty, TypeFamilyGathering:
		return true
	}
	return false
}

// Location зона заведения
type Location string

const (
	LocationNearPlayground Location = "proximo_play_salao"
	LocationNearStage      Location = "proximo_palco_salao"
	LocationSideDeckBack   Location = "deck_lateral_fundo"
	LocationSideDeckStage  Location = "deck_lateral_palco"
	LocationOutdoorFront   Location = "area_externa_frente"
)

// Locations все зоны в порядке отображения
var Locations = []Location{
	LocationNearPlayground,
	LocationNearStage,
	LocationSideDeckBack,
	LocationSideDeckStage,
	LocationOutdoorFront,
}

// PanelAllowedLocations зоны, в которых можно бронировать панель
var PanelAllowedLocations = []Location{
	LocationSideDeckBack,
	LocationSideDeckStage,
	LocationOutdoorFront,
}

// IsValid проверяет, что зона известна
func (l Location) IsValid() bool {
	for _, loc := range Locations {
		if loc == l {
			return true
		}
	}
	return false
}

// AllowsPanel возвращает true, если в зоне можно бронировать панель
func (l Location) AllowsPanel() bool {
	for _, loc := range PanelAllowedLocations {
		if loc == l {
			return true
		}
	}
	return false
}

// MenuType тип меню
type MenuType string

const (
	MenuRegular MenuType = "normal"
	MenuPackage MenuType = "pacote_fechado"
)

var reservationTypeLabels = map[ReservationType]string{
	TypeBirthday:        "Aniversário",
	TypeBachelorParty:   "Despedida de Solteiro",
	TypeFamilyGathering: "Reunião de Família ou Amigos",
}

var locationLabels = map[Location]string{
	LocationNearPlayground: "Próximo ao play (salão)",
	LocationNearStage:      "Próximo ao palco (salão)",
	LocationSideDeckBack:   "Deck lateral (fundo)",
	LocationSideDeckStage:  "Deck lateral (próximo ao palco)",
	LocationOutdoorFront:   "Área externa (frente)",
}

var menuTypeLabels = map[MenuType]string{
	MenuRegular: "Cardápio Normal",
	MenuPackage: "Pacote Fechado",
}

// Label возвращает название типа для отображения (или сам код, если он неизвестен)
func (t ReservationType) Label() string {
	if label, ok := reservationTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Label возвращает название зоны для отображения
func (l Location) Label() string {
	if label, ok := locationLabels[l]; ok {
		return label
	}
	return string(l)
}

// Label возвращает название меню для отображения
func (m MenuType) Label() string {
	if label, ok := menuTypeLabels[m]; ok {
		return label
	}
	return string(m)
}

// ReservationDraft данные формы, заполняемые пользователем по шагам
type ReservationDraft struct {
	// Шаг 1: персональные данные
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"dataNascimento"`

	// Шаг 2: тип бронирования
	TipoReserva       ReservationType `json:"tipoReserva"`
	ReservaPainel     bool            `json:"reservaPainel"`
	FotoPainel        string          `json:"fotoPainel,omitempty"`
	OrientacoesPainel string          `json:"orientacoesPainel,omitempty"`
	TipoCardapio      MenuType        `json:"tipoCardapio,omitempty"`
	OrientacoesCompra string          `json:"orientacoesCompra,omitempty"`

	// Шаг 2: детали бронирования
	QuantidadePessoas int      `json:"quantidadePessoas"`
	DataReserva       string   `json:"dataReserva"`
	HorarioDesejado   string   `json:"horarioDesejado"`
	LocalDesejado     Location `json:"localDesejado"`
	Observacoes       string   `json:"observacoes,omitempty"`
}

// NewReservationDraft создает пустой черновик
func NewReservationDraft() ReservationDraft {
	return ReservationDraft{QuantidadePessoas: 1}
}

// WantsPanel возвращает true, если панель выбрана для типа, который её поддерживает
func (d *ReservationDraft) WantsPanel() bool {
	return d.ReservaPainel && d.TipoReserva.SupportsPanel()
}

// ChangeType меняет тип бронирования и сбрасывает поля панели
func (d *ReservationDraft) ChangeType(t ReservationType) {
	d.TipoReserva = t
	d.ReservaPainel = false
	d.FotoPainel = ""
	d.OrientacoesPainel = ""
	d.TipoCardapio = ""
}

// DraftSnapshot то, что сохраняется в хранилище черновиков (только данные формы и текущий шаг)
type DraftSnapshot struct {
	ID          string           `json:"id"`
	FormData    ReservationDraft `json:"formData"`
	CurrentStep int              `json:"currentStep"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
