package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insightdeck/internal/model"
)

// Seeds one published demo survey with a spread of responses: fast and
// slow submitters, anonymous respondents, partial completions and a few
// identical answer sets, so the insights endpoints have something to show.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "insightdeck"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	survey := model.Survey{
		ID:     uuid.New().String(),
		HostID: "host_demo0001",
		Title:  "Product Onboarding Feedback",
		Topic:  "How new users experience the first week of the product.",
		Questions: []model.Question{
			{
				ID:      "q1",
				Text:    "How satisfied are you with the onboarding overall?",
				Kind:    model.QuestionKindChoice,
				Options: []string{"Very satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very dissatisfied"},
			},
			{
				ID:      "q2",
				Text:    "How did you first hear about the product?",
				Kind:    model.QuestionKindChoice,
				Options: []string{"Search", "Colleague", "Social media", "Conference"},
			},
			{
				ID:   "q3",
				Text: "What worked well during your first week?",
				Kind: model.QuestionKindFreeText,
			},
			{
				ID:   "q4",
				Text: "What should we improve?",
				Kind: model.QuestionKindFreeText,
			},
		},
		Published: true,
		CreatedAt: time.Now().Add(-14 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-14 * 24 * time.Hour),
	}

	if _, err := db.Collection("surveys").InsertOne(ctx, survey); err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	base := time.Now().Add(-10 * 24 * time.Hour)
	seedResponses := []model.Response{
		{
			RespondentName:    "Dana Whitfield",
			CompletionSeconds: 140,
			SubmittedAt:       base.Add(9 * time.Hour),
			Answers: map[string]string{
				"q1": "Very satisfied",
				"q2": "Colleague",
				"q3": "The guided setup was absolutely wonderful and the examples were great.",
				"q4": "Slightly confusing billing page, but nothing major.",
			},
		},
		{
			RespondentName:    "Priya Raman",
			CompletionSeconds: 210,
			SubmittedAt:       base.Add(26 * time.Hour),
			Answers: map[string]string{
				"q1": "Satisfied",
				"q2": "Search",
				"q3": "Clear documentation and a really helpful support chat during setup.",
				"q4": "The dashboard feels slow on large projects and the export is hard to find.",
			},
		},
		{
			CompletionSeconds: 95,
			SubmittedAt:       base.Add(30 * time.Hour),
			Answers: map[string]string{
				"q1": "Neutral",
				"q2": "Social media",
				"q3": "Setup was fine.",
				"q4": "Not happy with the confusing permissions screen, it was frustrating.",
			},
		},
		{
			RespondentName:    "Miguel Torres",
			CompletionSeconds: 480,
			SubmittedAt:       base.Add(3 * 24 * time.Hour),
			Answers: map[string]string{
				"q1": "Satisfied",
				"q2": "Conference",
				"q3": "I liked the sample projects; they made the core concepts very clear and easy to follow for my whole team.",
				"q4": "Would love dark mode and a faster import. The current importer is slow and occasionally buggy with large files.",
			},
		},
		{
			CompletionSeconds: 60,
			SubmittedAt:       base.Add(4 * 24 * time.Hour),
			Answers: map[string]string{
				"q1": "Dissatisfied",
			},
		},
		{
			RespondentName:    "Anonymous",
			CompletionSeconds: 75,
			SubmittedAt:       base.Add(5 * 24 * time.Hour),
			Answers: map[string]string{
				"q1": "Neutral",
				"q2": "Search",
			},
		},
	}

	// Duplicate-pattern block: identical answer sets, bot-like timing.
	for i := 0; i < 5; i++ {
		seedResponses = append(seedResponses, model.Response{
			CompletionSeconds: 22,
			SubmittedAt:       base.Add(6*24*time.Hour + time.Duration(i)*time.Minute),
			Answers: map[string]string{
				"q1": "Very satisfied",
				"q2": "Social media",
				"q3": "good",
				"q4": "good",
			},
		})
	}

	for i := range seedResponses {
		seedResponses[i].ID = uuid.New().String()
		seedResponses[i].SurveyID = survey.ID
	}

	docs := make([]interface{}, len(seedResponses))
	for i := range seedResponses {
		docs[i] = seedResponses[i]
	}
	if _, err := db.Collection("responses").InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert responses: %v", err)
	}

	fmt.Printf("Seeded survey %s with %d responses\n", survey.ID, len(seedResponses))
}
