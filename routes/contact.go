package routes

import (
	"github.com/kataras/iris/v12"

	"hotel-booking-server/services"
	"hotel-booking-server/utils"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=256"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=256"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SendContactMessage forwards the contact form to the hotel inbox.
func SendContactMessage(ctx iris.Context) {
	var input ContactInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	mail, mailErr := services.NewMailService()
	if mailErr != nil {
		utils.CreateError(iris.StatusInternalServerError, "Mail Error", "Email configuration missing.", ctx)
		return
	}

	if err := mail.SendContactMessage(input.Name, input.Email, input.Subject, input.Message); err != nil {
		utils.CreateError(iris.StatusInternalServerError, "Mail Error", "Failed to send email.", ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Email sent successfully"})
}
