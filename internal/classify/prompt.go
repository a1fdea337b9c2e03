package classify

import "fmt"

// categoryGuidance steers the oracle toward specific genres instead of broad
// buckets like "Non-Fiction". Shared by every prompt-based strategy.
const categoryGuidance = `Be as specific as possible. For non-fiction books, don't just say "Non-Fiction" - use more specific categories like:
- Geography, Travel, or Regional Studies
- Neuroscience, Psychology, or Cognitive Science
- Philosophy, Ethics, or Logic
- History (with specific time period if possible)
- Science (Physics, Chemistry, Biology, etc.)
- Mathematics, Statistics, or Data Science
- Economics, Finance, or Business
- Politics, Sociology, or Anthropology
- Technology, Computer Science, or Engineering
- Education, Teaching, or Pedagogy
- Art, Music, or Literature Criticism
- Biography or Memoir
- Self-Help, Personal Development, or Productivity
- Cooking, Food, or Nutrition
- Health, Medicine, or Fitness
- Religion, Spirituality, or Mythology

For fiction, use specific genres like:
- Science Fiction, Fantasy, or Horror
- Mystery, Thriller, or Crime
- Romance, Historical Fiction, or Literary Fiction
- Young Adult, Children's, or Middle Grade

Respond with only the most specific genre name. If uncertain, respond with 'UNCERTAIN'.`

func filenamePrompt(title string) string {
	return fmt.Sprintf("Based on the filename '%s', determine the most specific genre of this book.\n%s", title, categoryGuidance)
}

func contentPrompt(filename, excerpt string) string {
	return fmt.Sprintf("Based on the following content from the beginning of '%s', determine the most specific genre of this book.\n%s\n\nContent:\n%s", filename, categoryGuidance, excerpt)
}

func searchPrompt(title, results string) string {
	return fmt.Sprintf("Based on these search results for '%s', determine the most specific genre of this book.\n%s\n\nSearch Results:\n%s", title, categoryGuidance, results)
}
