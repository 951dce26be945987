package mailer

import "fmt"

// Fixed plain-text notification templates. Labels are Spanish to match what
// the staff inbox expects.

type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type BookingDetails struct {
	Reference    string
	EventName    string
	Description  string
	Date         string
	StartTime    string
	EndTime      string
	Attendees    int
	Organizer    string
	ContactEmail string
	PhoneNumber  string
}

func ContactMessage(d ContactDetails) Message {
	body := fmt.Sprintf(`Nombre: %s
Email: %s
Teléfono: %s
Asunto: %s
Mensaje: %s
`, d.Name, d.Email, d.Phone, d.Subject, d.Message)

	return Message{
		Subject: "Nuevo mensaje de contacto: " + d.Subject,
		Body:    body,
	}
}

func BookingMessage(d BookingDetails) Message {
	body := fmt.Sprintf(`Nueva solicitud de reserva de evento:

Referencia: %s
Nombre del evento: %s
Descripción: %s
Fecha del evento: %s
Hora de inicio: %s
Hora de finalización: %s
Número de asistentes: %d
Organizador: %s
Correo de contacto: %s
Número de teléfono: %s
`, d.Reference, d.EventName, d.Description, d.Date, d.StartTime, d.EndTime,
		d.Attendees, d.Organizer, d.ContactEmail, d.PhoneNumber)

	return Message{
		Subject: "Nueva reserva de evento desde la web",
		Body:    body,
	}
}
