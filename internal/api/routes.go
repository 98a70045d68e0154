package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	intake := api.Group("/intake", handler.AuthRequired, handler.ClientAccessRequired)
	intake.Post("/complete", handler.CompleteIntake)

	checkins := api.Group("/checkins", handler.AuthRequired, handler.ClientAccessRequired)
	checkins.Get("", handler.GetCheckinStatus)
	checkins.Post("/:sequence", handler.SubmitCheckin)

	progress := api.Group("/progress", handler.AuthRequired, handler.ClientAccessRequired)
	progress.Get("", handler.GetProgress)

	plans := api.Group("/plans", handler.AuthRequired, handler.ClientAccessRequired)
	plans.Get("/diet", handler.GetDietPlans)
	plans.Get("/training", handler.GetTrainingPlans)

	support := api.Group("/support", handler.AuthRequired, handler.ClientAccessRequired)
	support.Get("", handler.GetSupportThread)
	support.Post("", handler.PostSupportMessage)
	support.Get("/unread", handler.GetSupportUnreadCount)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/clients", handler.ListClients)
	admin.Post("/clients", handler.ProvisionClient)
	admin.Get("/clients/:id", handler.GetClientDetail)
	admin.Post("/clients/:id/extend", handler.GrantExtension)
	admin.Post("/clients/:id/lock", handler.LockClientAccess)
	admin.Post("/clients/:id/unlock", handler.UnlockClientAccess)
	admin.Get("/clients/:id/export.csv", handler.ExportClientCheckinsCSV)
	admin.Get("/clients/:id/support", handler.GetClientSupportThread)
	admin.Post("/clients/:id/support", handler.PostClientSupportReply)
	admin.Get("/clients/:id/diet", handler.ListClientDiets)
	admin.Post("/clients/:id/diet", handler.SendClientDiet)
	admin.Delete("/clients/:id/diet/:planID", handler.DeleteClientDiet)
	admin.Get("/clients/:id/training", handler.ListClientTrainings)
	admin.Post("/clients/:id/training", handler.SendClientTraining)
	admin.Delete("/clients/:id/training/:planID", handler.DeleteClientTraining)
}
