package validation

// Сообщения об ошибках полей
const (
	msgNome              = "Nome deve ter pelo menos 3 caracteres"
	msgEmail             = "Informe um e-mail válido"
	msgTelefone          = "Informe o telefone no formato (XX) XXXXX-XXXX"
	msgDataNascimento    = "É necessário ter entre 18 e 120 anos para fazer a reserva"
	msgTipoReserva       = "Selecione o tipo de reserva"
	msgTipoCardapio      = "Selecione o tipo de cardápio"
	msgMax500            = "Máximo de 500 caracteres"
	msgMax1000           = "Máximo de 1000 caracteres"
	msgPartySizeMin      = "Reserva mínima de 4 pessoas"
	msgPartySizeMax      = "Máximo de 50 pessoas por reserva"
	msgDataReserva       = "Selecione uma data a partir de hoje"
	msgHorario           = "Selecione um horário"
	msgLocal             = "Selecione o local desejado para a reserva"
	msgFotoPainel        = "Envie a foto para o painel"
	msgFotoPainelInvalid = "A foto do painel é inválida"
	msgFotoPainelSize    = "A foto deve ter no máximo 5MB"
	msgOrientacoesPainel = "Descreva as orientações para o painel"
)

// fieldMessages сообщение по полю и тегу; "*" - для любого тега
var fieldMessages = map[string]map[string]string{
	"nome":              {"*": msgNome},
	"email":             {"*": msgEmail},
	"telefone":          {"*": msgTelefone},
	"dataNascimento":    {"*": msgDataNascimento},
	"tipoReserva":       {"*": msgTipoReserva},
	"tipoCardapio":      {"*": msgTipoCardapio},
	"orientacoesPainel": {"*": msgMax500},
	"orientacoesCompra": {"*": msgMax500},
	"observacoes":       {"*": msgMax1000},
	"quantidadePessoas": {"min": msgPartySizeMin, "max": msgPartySizeMax, "*": msgPartySizeMin},
	"dataReserva":       {"*": msgDataReserva},
	"horarioDesejado":   {"*": msgHorario},
	"localDesejado":     {"*": msgLocal},
}

func messageFor(field, tag string) string {
	messages, ok := fieldMessages[field]
	if !ok {
		return "Campo inválido"
	}
	if msg, ok := messages[tag]; ok {
		return msg
	}
	return messages["*"]
}
