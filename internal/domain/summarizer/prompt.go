package summarizer

import (
	"fmt"
	"strings"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
)

// Default prompt prefixes.
const (
	DefaultTextPrompt        = "Summarize the following text:\n\n"
	DefaultProductPrompt     = "Summarize the following product information and customer reviews:\n\n"
	DefaultDescriptionPrompt = "Summarize this product description concisely:\n\n"
	DefaultReviewsPrompt     = "Analyze and summarize the key points and overall sentiment from these customer reviews:\n\n"
)

// Sentinels returned instead of calling the provider.
const (
	NoContentSummary     = "No content to summarize."
	NoResultSummary      = "No summary could be generated."
	NoDescriptionSummary = "Product has no description to summarize."
	NoReviewsSummary     = "No reviews available to summarize for this product."
)

const (
	noDescriptionMarker = "No product description available."
	noReviewsMarker     = "No reviews available for this product."
)

// productDocument renders a product and its reviews into the body of the
// combined product prompt.
func productDocument(p catalog.Product, reviews []review.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Product Price: $%.2f\n", p.Price)
	desc := p.DescriptionText()
	if desc == "" {
		desc = noDescriptionMarker
	}
	fmt.Fprintf(&b, "Product Description: %s\n\n", desc)

	b.WriteString("Customer Reviews:\n")
	if len(reviews) == 0 {
		b.WriteString(noReviewsMarker)
		return b.String()
	}
	b.WriteString(reviewLines(reviews, "\n"))
	return b.String()
}

// reviewLines enumerates reviews in listed order starting at 1.
func reviewLines(reviews []review.Review, sep string) string {
	lines := make([]string, 0, len(reviews))
	for i, r := range reviews {
		lines = append(lines, fmt.Sprintf("Review %d (Rating %d/5): \"%s\"", i+1, r.Rating, r.Comment))
	}
	return strings.Join(lines, sep)
}

func normalize(text string) string {
	return strings.TrimSpace(text)
}

// firstChoice returns the first candidate's trimmed text, or "".
func firstChoice(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return strings.TrimSpace(choices[0])
}
