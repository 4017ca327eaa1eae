package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"
)

const (
	assistantEmptyReply    = "Please type something."
	assistantFallbackReply = "⚠️ Our AI assistant is currently busy. Please try again later."

	assistantOrderHistoryLimit = 3
)

// TextGenerator 对话文本生成器
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService 客服助手服务
// 回复按规则命中、模型生成、兜底文案三级顺序解析。
type AssistantService struct {
	generator   TextGenerator
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewAssistantService 创建客服助手服务
func NewAssistantService(generator TextGenerator, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *AssistantService {
	return &AssistantService{
		generator:   generator,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Chat 处理一条用户消息并返回回复文本
// userID 为 0 表示未登录用户。
func (s *AssistantService) Chat(ctx context.Context, userID uint, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return assistantEmptyReply
	}

	if reply := ruleBasedReply(message); reply != "" {
		return reply
	}

	if s.generator == nil {
		return assistantFallbackReply
	}

	prompt := s.buildPrompt(userID, message)
	reply, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Warnw("assistant_generate_failed",
			"user_id", userID,
			"error", err,
		)
		return assistantFallbackReply
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return assistantFallbackReply
	}
	return reply
}

// ruleBasedReply 关键词规则命中，未命中返回空串
func ruleBasedReply(message string) string {
	message = strings.ToLower(strings.TrimSpace(message))

	if strings.Contains(message, "hello") || strings.Contains(message, "hi") {
		return "Hello! 👋 How can I help you today?"
	}
	if strings.Contains(message, "shipping") {
		return "We provide shipping across India. Delivery usually takes 3–5 working days."
	}
	if strings.Contains(message, "return") || strings.Contains(message, "refund") {
		return "We accept returns within 7 days of delivery. Please keep the shoes unused and in original packaging."
	}
	if strings.Contains(message, "contact") {
		return "You can reach us via our contact page or email support@alpha.com."
	}
	return ""
}

// buildPrompt 拼装含商品目录与用户近期订单的提示词
func (s *AssistantService) buildPrompt(userID uint, message string) string {
	var b strings.Builder
	b.WriteString("You are FITX Bot, a helpful and friendly assistant for FITX, a shoe e-commerce website.\n")
	b.WriteString("Your primary goal is to help users find information about shoes, store policies, and their orders.\n")
	b.WriteString("You have access to detailed product information and the user's order history.\n\n")

	b.WriteString("**Product Data Available (Name, Category, Price, Description, Badge, Image Path):**\n")
	b.WriteString(s.productSummary())
	b.WriteString("\n\n**User's Order History:**\n")
	b.WriteString(s.orderSummary(userID))

	b.WriteString("\n\n**Instructions for your responses:**\n")
	b.WriteString("1. When asked about products, use the 'Product Data Available' section to provide accurate information. If a product is not listed, state that you couldn't find it.\n")
	b.WriteString("2. If the user asks about their order status or history, use the 'User's Order History'. If the user is not logged in, instruct them to log in first.\n")
	b.WriteString("3. Answer general questions about FITX policies (e.g., shipping, returns) or typical e-commerce queries.\n")
	b.WriteString("4. If a question is completely unrelated to FITX, shoes, or orders, politely state that you can only assist with FITX-related inquiries.\n")
	b.WriteString("5. Be friendly, clear, and concise.\n\n")

	fmt.Fprintf(&b, "USER'S QUESTION: %q\nYOUR ANSWER:\n", message)
	return b.String()
}

func (s *AssistantService) productSummary() string {
	products, _, err := s.productRepo.List(repository.ProductListFilter{})
	if err != nil {
		logger.Warnw("assistant_product_summary_failed", "error", err)
		return "Product data is temporarily unavailable."
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		badgeInfo := ""
		if p.Badge != "" {
			badgeInfo = fmt.Sprintf(" (Badge: %s)", p.Badge)
		}
		lines = append(lines, fmt.Sprintf("- Name: %s%s, Category: %s, Price: ₹%s, Description: %s, Image: %s",
			p.Name, badgeInfo, p.Category, p.Price.StringFixed(2), p.Description, p.ImageMain))
	}
	return strings.Join(lines, "\n")
}

func (s *AssistantService) orderSummary(userID uint) string {
	if userID == 0 {
		return "User is not logged in."
	}

	orders, _, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		UserID:   userID,
		Page:     1,
		PageSize: assistantOrderHistoryLimit,
	})
	if err != nil {
		logger.Warnw("assistant_order_summary_failed", "user_id", userID, "error", err)
		return "The user's order history is temporarily unavailable."
	}
	if len(orders) == 0 {
		return "The user has no past orders."
	}

	var b strings.Builder
	b.WriteString("Here is the user's recent order history:\n")
	for _, order := range orders {
		detail := buildOrderDetail(order)
		fmt.Fprintf(&b, "- Order ID %d, Status: %s, Total: ₹%s, Order Date: %s\n",
			order.ID, detail.Status, detail.TotalAmount.StringFixed(2), order.OrderDate.Format("2006-01-02 15:04:05"))
	}
	return strings.TrimRight(b.String(), "\n")
}
