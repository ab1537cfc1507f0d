package advisor

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/paisapal/backend/pkg/models"
	"github.com/paisapal/backend/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Translator resolves a template key into a localized template string.
type Translator func(key string) string

// Formatter renders an amount for display, e.g. with a currency symbol.
type Formatter func(amount decimal.Decimal) string

// Responder renders advisor answers as localized text.
type Responder struct {
	service   *Service
	translate Translator
	format    Formatter
}

// NewResponder returns a responder backed by the advisor service.
func NewResponder(service *Service, translate Translator, format Formatter) *Responder {
	return &Responder{service: service, translate: translate, format: format}
}

// Response is a rendered advisor answer.
type Response struct {
	Text       string
	Intent     Intent
	Confidence float64
}

// Defaults used when a query names an intent but omits its parameters.
var (
	defaultInvestAmount = decimal.NewFromInt(10000)
	defaultCutCategory  = models.CategoryFood
	defaultCutPercent   = int64(15)
)

// adviceCount is the number of canned advice templates (ai.advice.0 .. N-1).
const adviceCount = 8

// Respond classifies the query, computes the answer for the month containing
// now and renders it. Errors from the ledger are logged and turned into the
// localized error message so a UI can always show something.
func (r Responder) Respond(query string, month types.Month) Response {
	match := Detect(query)

	text, err := r.respond(match, month)
	if err != nil {
		log.Error().Err(err).Str("query", query).Str("intent", match.Intent.String()).Msg("advisor query failed")
		text = r.translate("ai.error")
	}

	return Response{Text: text, Intent: match.Intent, Confidence: match.Confidence}
}

func (r Responder) respond(match Match, month types.Month) (string, error) {
	switch match.Intent {
	case IntentSavingsAnalysis:
		return r.savingsAnalysis(month)

	case IntentTopExpense:
		return r.topExpense(month)

	case IntentOverspendCategory:
		return r.overspendCategory(month, match.Category)

	case IntentInvestmentRecommendation:
		amount := match.Amount
		if !amount.IsPositive() {
			amount = defaultInvestAmount
		}
		return r.investment(amount), nil

	case IntentSavingsProjection:
		category, percent := match.Category, match.Percent
		if category == "" {
			category = defaultCutCategory
		}
		if percent == 0 {
			percent = defaultCutPercent
		}
		return r.projection(month, category, percent)

	case IntentIncomeAnalysis:
		return r.incomeAnalysis(month)

	case IntentExpenseAnalysis:
		return r.expenseAnalysis(month)

	case IntentFinancialAdvice:
		return r.translate("ai.advice." + strconv.Itoa(rand.Intn(adviceCount))), nil

	default:
		return r.translate("ai.unknown_query"), nil
	}
}

func (r Responder) savingsAnalysis(month types.Month) (string, error) {
	stats, err := r.service.analytics.MonthlyStats(month)
	if err != nil {
		return "", err
	}

	var rate decimal.Decimal
	if stats.Income.IsPositive() {
		rate = stats.Savings.Div(stats.Income).Mul(decimal.NewFromInt(100))
	}

	key := "ai.savings.needs_improvement"
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		key = "ai.savings.excellent"
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		key = "ai.savings.good"
	}

	return r.render(key, map[string]string{
		"savings": r.format(stats.Savings),
		"rate":    rate.Round(1).String(),
	}), nil
}

func (r Responder) topExpense(month types.Month) (string, error) {
	stats, err := r.service.analytics.MonthlyStats(month)
	if err != nil {
		return "", err
	}

	if stats.TopCategory == "" {
		return r.translate("ai.no_expenses"), nil
	}

	return r.render("ai.top_expense", map[string]string{
		"category": string(stats.TopCategory),
		"amount":   r.format(stats.TopCategoryAmount),
	}), nil
}

func (r Responder) overspendCategory(month types.Month, category models.Category) (string, error) {
	spent, err := r.service.analytics.CategoryExpenses(month, category)
	if err != nil {
		return "", err
	}

	limit, ok := referenceLimits[category]
	if ok && spent.GreaterThan(limit) {
		return r.render("ai.overspend.category", map[string]string{
			"category":  string(category),
			"current":   r.format(spent),
			"limit":     r.format(limit),
			"overspend": r.format(spent.Sub(limit)),
		}), nil
	}

	return r.render("ai.overspend.within_budget", map[string]string{
		"category": string(category),
	}), nil
}

func (r Responder) investment(amount decimal.Decimal) string {
	inv := InvestmentRecommendation(amount)

	return r.render("ai.investment.recommendation", map[string]string{
		"type":        inv.Type,
		"amount":      r.format(inv.Amount),
		"risk":        inv.Risk,
		"description": inv.Description,
		"return":      inv.ExpectedReturn,
	})
}

func (r Responder) projection(month types.Month, category models.Category, percent int64) (string, error) {
	projection, err := r.service.ProjectSavingsWithCut(month, category, percent)
	if err != nil {
		return "", err
	}

	return r.render("ai.savings_projection.projection", map[string]string{
		"category":  string(category),
		"percent":   strconv.FormatInt(percent, 10),
		"current":   r.format(projection.CurrentSavings),
		"projected": r.format(projection.ProjectedSavings),
		"increase":  r.format(projection.MonthlySaving),
	}), nil
}

func (r Responder) incomeAnalysis(month types.Month) (string, error) {
	stats, err := r.service.analytics.MonthlyStats(month)
	if err != nil {
		return "", err
	}

	return r.render("ai.income.analysis", map[string]string{
		"income": r.format(stats.Income),
	}), nil
}

func (r Responder) expenseAnalysis(month types.Month) (string, error) {
	stats, err := r.service.analytics.MonthlyStats(month)
	if err != nil {
		return "", err
	}

	return r.render("ai.expense.analysis", map[string]string{
		"expenses": r.format(stats.Expenses),
	}), nil
}

// render fills a template's {placeholder} slots.
func (r Responder) render(key string, values map[string]string) string {
	pairs := make([]string, 0, 2*len(values))
	for placeholder, value := range values {
		pairs = append(pairs, "{"+placeholder+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(r.translate(key))
}

// QuickActions returns the localized suggested queries a UI can offer.
func QuickActions(translate Translator) []string {
	return []string{
		translate("ai.quick_actions.savings"),
		translate("ai.quick_actions.top_expense"),
		translate("ai.quick_actions.overspend_food"),
		translate("ai.quick_actions.investment"),
		translate("ai.quick_actions.cut_dining"),
	}
}
