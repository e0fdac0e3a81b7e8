// Command smoketest exercises a running door-discovery server end to end:
// it registers a throwaway user, logs in, submits a door with a generated
// image, and checks that the door comes back from the listing endpoints.
// It replaces manual curl sessions during deployments.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"time"

	"github.com/doorhub/door-discovery/internal/logger"
	"github.com/doorhub/door-discovery/models"
	"github.com/go-resty/resty/v2"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "Server base URL")
	email := flag.String("email", fmt.Sprintf("smoke_%d@example.com", time.Now().Unix()), "Email to register with")
	password := flag.String("password", "password123", "Password to register with")
	name := flag.String("name", "Smoke Tester", "Display name to register with")
	flag.Parse()

	log := logger.NewLogger("smoketest")
	client := resty.New().SetBaseURL(*baseURL)

	// register; an already-registered address is fine when re-running
	// against the same environment
	registerResp, err := client.R().
		SetBody(models.RegisterRequest{Email: *email, Name: *name, Password: *password}).
		Post("/api/register")
	if err != nil {
		log.Fatal().Err(err).Msg("register request failed")
	}
	if registerResp.StatusCode() != http.StatusOK {
		log.Warn().Int("status", registerResp.StatusCode()).Msg("register did not succeed, trying to log in anyway")
	}

	var tokenResp models.TokenResponse
	loginResp, err := client.R().
		SetFormData(map[string]string{"username": *email, "password": *password}).
		SetResult(&tokenResp).
		Post("/api/token")
	if err != nil {
		log.Fatal().Err(err).Msg("token request failed")
	}
	if loginResp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", loginResp.StatusCode()).Msg("login failed")
	}
	client.SetAuthToken(tokenResp.AccessToken)
	log.Info().Str("email", *email).Msg("logged in")

	var me models.User
	meResp, err := client.R().SetResult(&me).Get("/api/users/me")
	if err != nil {
		log.Fatal().Err(err).Msg("users/me request failed")
	}
	if meResp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", meResp.StatusCode()).Msg("users/me failed")
	}
	log.Info().Str("id", me.ID).Str("name", me.Name).Msg("authenticated user")

	var door models.Door
	doorResp, err := client.R().
		SetFileReader("image", "smoke.jpg", bytes.NewReader(testImage())).
		SetFormData(map[string]string{
			"title":       "Smoke Test Door",
			"description": "Created by the smoketest client",
			"place_name":  "Test Lane",
			"category":    models.CategoryA,
			"latitude":    "40.0",
			"longitude":   "-70.0",
		}).
		SetResult(&door).
		Post("/api/doors")
	if err != nil {
		log.Fatal().Err(err).Msg("door submission request failed")
	}
	if doorResp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", doorResp.StatusCode()).Msg("door submission failed")
	}
	log.Info().Str("door_id", door.ID).Msg("door created")

	var doors []models.Door
	listResp, err := client.R().
		SetQueryParam("category", models.CategoryA).
		SetResult(&doors).
		Get("/api/doors")
	if err != nil {
		log.Fatal().Err(err).Msg("doors listing request failed")
	}
	if listResp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", listResp.StatusCode()).Msg("doors listing failed")
	}

	found := false
	for _, d := range doors {
		if d.ID == door.ID {
			found = true
			break
		}
	}
	if !found {
		log.Fatal().Str("door_id", door.ID).Msg("created door missing from listing")
	}

	var notifications []models.Notification
	notifResp, err := client.R().SetResult(&notifications).Get("/api/notifications")
	if err != nil {
		log.Fatal().Err(err).Msg("notifications listing request failed")
	}
	if notifResp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", notifResp.StatusCode()).Msg("notifications listing failed")
	}

	log.Info().
		Int("doors", len(doors)).
		Int("notifications", len(notifications)).
		Msg("smoke test passed")
}

// testImage renders a small solid-color JPEG to upload.
func testImage() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		panic(err)
	}

	return buf.Bytes()
}
