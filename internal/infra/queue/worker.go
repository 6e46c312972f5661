package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/lead-engine/internal/infra/http/middleware"
)

// AlertSender define o contrato do canal de entrega (email hoje).
type AlertSender interface {
	SendHotLeadAlert(payload HotLeadPayload) error
}

// Worker consome a fila de leads quentes e dispara o alerta.
// 100% desacoplado do banco: só canal + sender.
type Worker struct {
	Channel *amqp.Channel
	Sender  AlertSender
}

func NewWorker(ch *amqp.Channel, sender AlertSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload HotLeadPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Alerta de lead quente: lead=%d score=%d", payload.LeadID, payload.Score)

			if err := w.Sender.SendHotLeadAlert(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao enviar alerta: %s", err)
				middleware.RecordIntegrationError("smtp")
				// Vai pra DLQ; retentativa fica por conta do operador.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Alerta entregue para lead %d", payload.LeadID)
				middleware.RecordHotLeadAlert()
				d.Ack(false)
			}
		}
	}()

	log.Printf("🎧 [WORKER] Aguardando alertas na fila %s", queueName)
	<-forever
}
