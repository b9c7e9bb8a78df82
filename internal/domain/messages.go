package domain

// Сообщения, которые показываются пользователю
const (
	MsgPastDate             = "Não é possível fazer reservas para datas passadas"
	MsgTodayClosed          = "As reservas para hoje já foram encerradas"
	MsgDateUnavailable      = "Esta data não está disponível para reservas"
	MsgSundayClosed         = "Não atendemos aos domingos"
	MsgWeekdayClosed        = "Não atendemos neste dia da semana"
	MsgPanelPartySizeTooLow = "O painel só pode ser reservado para grupos com 10 ou mais pessoas. Aumente a quantidade de pessoas acima."
	MsgPanelLocationInvalid = "O painel só pode ser reservado nestes locais: Deck lateral (fundo), Deck lateral (próximo ao palco) ou Área externa (frente). Altere o local desejado acima."
	MsgPanelCheckFailed     = "Não foi possível verificar a disponibilidade do painel. Tente novamente."
	MsgSpotsCheckFailed     = "Não foi possível verificar a disponibilidade de vagas. Tente novamente."
	MsgSubmissionSent       = "Reserva enviada com sucesso."
	MsgSubmissionOffline    = "Reserva salva localmente. Será enviada quando a conexão for restabelecida."
	MsgSubmissionFailed     = "Não foi possível enviar sua reserva. Tente novamente."
	MsgTimeUnavailable      = "Selecione um horário disponível para a data escolhida"
	MsgSpotsUnavailable     = "Não há vagas disponíveis neste local para a data escolhida"
	MsgSpotsPending         = "Aguarde a verificação de disponibilidade de vagas"
	MsgDateNotChecked       = "Aguarde a verificação da data escolhida"
)
