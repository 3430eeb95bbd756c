package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds the API with fake users, posts and interactions for local
// development. Run against a fresh database:
//
//	API_URL=http://localhost:8080 go run ./cmd/seed
const defaultAPIURL = "http://localhost:8080"

type seededUser struct {
	ID    uint
	Token string
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	s := &seeder{apiURL: apiURL, client: &http.Client{Timeout: 10 * time.Second}}

	users := make([]seededUser, 0, 8)
	for i := 0; i < 8; i++ {
		email := gofakeit.Email()
		s.post("/api/auth/register", "", map[string]any{
			"name":     gofakeit.Name(),
			"email":    email,
			"password": "password123",
		})
		var login struct {
			Token string `json:"token"`
			User  struct {
				ID uint `json:"id"`
			} `json:"user"`
		}
		s.postInto("/api/auth/login", "", map[string]any{
			"email":    email,
			"password": "password123",
		}, &login)
		users = append(users, seededUser{ID: login.User.ID, Token: login.Token})
	}
	log.Printf("Registered %d users", len(users))

	postIDs := make([]uint, 0, 20)
	for i := 0; i < 20; i++ {
		author := users[rand.Intn(len(users))]
		var post struct {
			ID uint `json:"id"`
		}
		s.postInto("/api/posts", author.Token, map[string]any{
			"title":   gofakeit.Dinner(),
			"content": gofakeit.Paragraph(1, 3, 12, " "),
		}, &post)
		postIDs = append(postIDs, post.ID)
	}
	log.Printf("Created %d posts", len(postIDs))

	for _, postID := range postIDs {
		for _, u := range users {
			if rand.Intn(3) == 0 {
				s.post(fmt.Sprintf("/api/posts/%d/like", postID), u.Token, nil)
			}
			if rand.Intn(5) == 0 {
				s.post(fmt.Sprintf("/api/posts/%d/favorite", postID), u.Token, nil)
			}
			if rand.Intn(4) == 0 {
				s.post(fmt.Sprintf("/api/posts/%d/comments", postID), u.Token, map[string]any{
					"text": gofakeit.Sentence(10),
				})
			}
		}
	}

	for _, u := range users {
		target := users[rand.Intn(len(users))]
		if target.ID != u.ID {
			s.post(fmt.Sprintf("/api/users/%d/follow", target.ID), u.Token, nil)
		}
	}

	log.Println("Seeding complete")
}

type seeder struct {
	apiURL string
	client *http.Client
}

func (s *seeder) post(path, token string, body any) {
	s.postInto(path, token, body, nil)
}

func (s *seeder) postInto(path, token string, body, out any) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal %s: %v", path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL+path, reader)
	if err != nil {
		log.Fatalf("request %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("POST %s returned %d", path, resp.StatusCode)
		return
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s: %v", path, err)
		}
	}
}
