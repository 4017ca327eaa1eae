package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeTextGenerator struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func setupAssistantServiceTest(t *testing.T, generator TextGenerator) (*AssistantService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:assistant_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewAssistantService(generator, repository.NewProductRepository(db), repository.NewOrderRepository(db))
	return svc, db
}

func TestAssistantServiceRuleReplies(t *testing.T) {
	svc, _ := setupAssistantServiceTest(t, nil)

	cases := []struct {
		message string
		want    string
	}{
		{message: "hello there", want: "Hello! 👋 How can I help you today?"},
		{message: "How long does shipping take?", want: "We provide shipping across India. Delivery usually takes 3–5 working days."},
		{message: "what is your return policy", want: "We accept returns within 7 days of delivery. Please keep the shoes unused and in original packaging."},
		{message: "can I get a refund", want: "We accept returns within 7 days of delivery. Please keep the shoes unused and in original packaging."},
		{message: "how do I contact you", want: "You can reach us via our contact page or email support@alpha.com."},
	}
	for _, tc := range cases {
		got := svc.Chat(context.Background(), 0, tc.message)
		if got != tc.want {
			t.Fatalf("message %q: want %q got %q", tc.message, tc.want, got)
		}
	}
}

func TestAssistantServiceEmptyMessage(t *testing.T) {
	svc, _ := setupAssistantServiceTest(t, nil)
	got := svc.Chat(context.Background(), 0, "   ")
	if got != "Please type something." {
		t.Fatalf("want empty-message prompt, got: %q", got)
	}
}

func TestAssistantServiceFallbackWithoutGenerator(t *testing.T) {
	svc, _ := setupAssistantServiceTest(t, nil)
	got := svc.Chat(context.Background(), 0, "recommend a good marathon shoe")
	if got != assistantFallbackReply {
		t.Fatalf("want fallback reply, got: %q", got)
	}
}

func TestAssistantServiceFallbackOnGeneratorError(t *testing.T) {
	gen := &fakeTextGenerator{err: errors.New("upstream timeout")}
	svc, _ := setupAssistantServiceTest(t, gen)
	got := svc.Chat(context.Background(), 0, "recommend a good marathon shoe")
	if got != assistantFallbackReply {
		t.Fatalf("want fallback reply on generator error, got: %q", got)
	}
}

func TestAssistantServiceGeneratedReply(t *testing.T) {
	gen := &fakeTextGenerator{reply: "  Try the Velocity Boost Runner.  "}
	svc, db := setupAssistantServiceTest(t, gen)
	seedCartProduct(t, db, 1, "Velocity Boost Runner", "3999.00")

	got := svc.Chat(context.Background(), 0, "recommend a good marathon shoe")
	if got != "Try the Velocity Boost Runner." {
		t.Fatalf("want trimmed generator reply, got: %q", got)
	}
	if !strings.Contains(gen.lastPrompt, "Velocity Boost Runner") {
		t.Fatalf("prompt should include product catalog, got: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "User is not logged in.") {
		t.Fatalf("prompt should flag anonymous user, got: %q", gen.lastPrompt)
	}
}

func TestAssistantServicePromptIncludesOrderHistory(t *testing.T) {
	gen := &fakeTextGenerator{reply: "done"}
	svc, db := setupAssistantServiceTest(t, gen)

	order := models.Order{
		OrderNo:     "FX20240101000000000001",
		UserID:      10,
		OrderDate:   time.Now(),
		TotalAmount: money(t, "3999.00"),
		Status:      models.OrderStatusPacked,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	_ = svc.Chat(context.Background(), 10, "where is my order")
	if !strings.Contains(gen.lastPrompt, "recent order history") {
		t.Fatalf("prompt should include order history section, got: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, fmt.Sprintf("Order ID %d", order.ID)) {
		t.Fatalf("prompt should mention the order, got: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Status: Packed") {
		t.Fatalf("prompt should carry the order status, got: %q", gen.lastPrompt)
	}
}
