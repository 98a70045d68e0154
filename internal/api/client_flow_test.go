package api

import (
	"net/http"
	"testing"
)

func TestClientRegistrationCheckinFlow(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":     "cliente@example.com",
		"password":  "supersecret",
		"full_name": "Cliente Teste",
		"plan_name": "Consultoria 30",
	})
	expectStatus(t, response, http.StatusCreated)
	cookie := authCookieFrom(t, response)

	// Intake is still pending, so dashboard APIs are fenced off.
	response = jsonRequest(t, app, http.MethodGet, "/api/checkins", cookie, nil)
	expectStatus(t, response, http.StatusForbidden)
	body := decodeJSONBody(t, response)
	if body["reason"] != "intake_required" {
		t.Fatalf("expected intake_required fence, got %v", body)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/intake/complete", cookie, map[string]any{
		"phone": "+55 11 99999-0000",
	})
	expectStatus(t, response, http.StatusOK)

	// Slot 1 is fillable immediately, the rest wait on cadence and order.
	response = jsonRequest(t, app, http.MethodGet, "/api/checkins", cookie, nil)
	expectStatus(t, response, http.StatusOK)
	body = decodeJSONBody(t, response)
	slots, ok := body["slots"].([]any)
	if !ok || len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %v", body["slots"])
	}
	firstSlot := slots[0].(map[string]any)
	if firstSlot["state"] != "fillable" {
		t.Fatalf("expected slot 1 fillable, got %v", firstSlot)
	}
	secondSlot := slots[1].(map[string]any)
	if secondSlot["state"] != "pending" {
		t.Fatalf("expected slot 2 pending, got %v", secondSlot)
	}

	checkinPayload := map[string]any{
		"hydration":           "3L",
		"sleep_hours":         "7h",
		"training_days":       map[string]string{"Segunda": "100%", "Terça": "Não treinei"},
		"completed_exercises": []string{"Agachamento", "Supino"},
		"weight":              82.5,
		"reflection":          "Semana boa",
	}
	response = jsonRequest(t, app, http.MethodPost, "/api/checkins/1", cookie, checkinPayload)
	expectStatus(t, response, http.StatusCreated)

	// A second submission for the same slot is a conflict even with a
	// different payload.
	response = jsonRequest(t, app, http.MethodPost, "/api/checkins/1", cookie, map[string]any{
		"hydration": "2L",
	})
	expectStatus(t, response, http.StatusConflict)

	// Slot 2 stays pending: slot 1 is submitted but its unlock day is a
	// week out.
	response = jsonRequest(t, app, http.MethodPost, "/api/checkins/2", cookie, checkinPayload)
	expectStatus(t, response, http.StatusForbidden)

	response = jsonRequest(t, app, http.MethodGet, "/api/progress", cookie, nil)
	expectStatus(t, response, http.StatusOK)
	body = decodeJSONBody(t, response)
	points, ok := body["points"].([]any)
	if !ok || len(points) != 1 {
		t.Fatalf("expected 1 progress point, got %v", body["points"])
	}
	point := points[0].(map[string]any)
	if point["hydration_liters"].(float64) != 3 || point["sleep_hours"].(float64) != 7 {
		t.Fatalf("unexpected progress point %v", point)
	}
	if point["training_average"].(float64) != 50 {
		t.Fatalf("expected training average 50, got %v", point["training_average"])
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _, _ := newTestApp(t)

	payload := map[string]any{"email": "dup@example.com", "password": "supersecret"}
	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", payload), http.StatusCreated)
	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", payload), http.StatusConflict)
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, _, _ := newTestApp(t)

	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "login@example.com",
		"password": "supersecret",
	}), http.StatusCreated)

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "login@example.com",
		"password": "wrongpassword",
	})
	expectStatus(t, response, http.StatusUnauthorized)

	response = jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "login@example.com",
		"password": "supersecret",
	})
	expectStatus(t, response, http.StatusOK)
}

func TestSupportThreadRoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "chat@example.com",
		"password": "supersecret",
	})
	expectStatus(t, response, http.StatusCreated)
	cookie := authCookieFrom(t, response)

	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/intake/complete", cookie, map[string]any{}), http.StatusOK)
	expectStatus(t, jsonRequest(t, app, http.MethodPost, "/api/support", cookie, map[string]any{
		"body": "Quando sai meu plano de treino?",
	}), http.StatusCreated)

	response = jsonRequest(t, app, http.MethodGet, "/api/support", cookie, nil)
	expectStatus(t, response, http.StatusOK)
	body := decodeJSONBody(t, response)
	messages, ok := body["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected 1 message, got %v", body["messages"])
	}
}
