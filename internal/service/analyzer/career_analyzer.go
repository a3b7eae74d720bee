package analyzer

import (
	"sort"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/shopspring/decimal"
)

// FallbackCareer is recommended for a winning category missing from the career table.
const FallbackCareer = "General IT"

var careerTable = map[models.Category]string{
	models.CategoryProgramming: "Software Developer",
	models.CategoryDatabase:    "Database Administrator",
	models.CategoryNetworking:  "Cloud Architect",
	models.CategorySecurity:    "Cybersecurity Specialist",
	models.CategoryElectives:   "System Analyst",
}

// CareerResult holds exact per-category means. BestCategory and Career are empty
// when HasData is false.
type CareerResult struct {
	HasData      bool
	Averages     map[models.Category]decimal.Decimal
	Counts       map[models.Category]int64
	BestCategory models.Category
	Career       string
}

func CareerFor(category models.Category) string {
	if career, ok := careerTable[category]; ok {
		return career
	}
	return FallbackCareer
}

// TotalsFromSubjects sums the grades of graded subjects per category.
// Ungraded subjects are skipped.
func TotalsFromSubjects(subjects []models.Subject) []models.CategoryTotal {
	index := make(map[models.Category]int)
	var totals []models.CategoryTotal

	for _, s := range subjects {
		if !s.Grade.Valid {
			continue
		}
		i, ok := index[s.Category]
		if !ok {
			i = len(totals)
			index[s.Category] = i
			totals = append(totals, models.CategoryTotal{Category: s.Category})
		}
		totals[i].Sum = totals[i].Sum.Add(s.Grade.Decimal)
		totals[i].Count++
	}

	return totals
}

// AnalyzeGrades computes the mean grade of every category and picks the highest.
// Equal means resolve to the category listed first in models.Categories; categories
// outside that list rank after it, alphabetically.
func AnalyzeGrades(totals []models.CategoryTotal) CareerResult {
	sums := make(map[models.Category]decimal.Decimal)
	counts := make(map[models.Category]int64)

	for _, t := range totals {
		if t.Count <= 0 {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Sum)
		counts[t.Category] += t.Count
	}

	result := CareerResult{
		Averages: make(map[models.Category]decimal.Decimal, len(sums)),
		Counts:   counts,
	}
	if len(sums) == 0 {
		return result
	}

	for category, sum := range sums {
		result.Averages[category] = sum.Div(decimal.NewFromInt(counts[category]))
	}

	ordered := orderCategories(result.Averages)
	best := ordered[0]
	for _, category := range ordered[1:] {
		if result.Averages[category].GreaterThan(result.Averages[best]) {
			best = category
		}
	}

	result.HasData = true
	result.BestCategory = best
	result.Career = CareerFor(best)

	return result
}

func orderCategories(averages map[models.Category]decimal.Decimal) []models.Category {
	ordered := make([]models.Category, 0, len(averages))
	for _, category := range models.Categories {
		if _, ok := averages[category]; ok {
			ordered = append(ordered, category)
		}
	}

	var unknown []models.Category
	for category := range averages {
		if !models.IsValidCategory(string(category)) {
			unknown = append(unknown, category)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	return append(ordered, unknown...)
}
