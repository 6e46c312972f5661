package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string // destinatário dos alertas (o agente)
}

type HotLeadAlertData struct {
	Name   string
	Email  string
	Phone  string
	Score  int
	Source string
}
