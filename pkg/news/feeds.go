package news

// Feed describes one external news source.
type Feed struct {
	URL           string
	Category      string
	CategoryLabel string
	Source        string
}

// feeds is the fixed collection set. Order matters only for logging.
var feeds = []Feed{
	{
		URL:           "https://techcrunch.com/category/artificial-intelligence/feed/",
		Category:      "industry",
		CategoryLabel: "산업",
		Source:        "TechCrunch",
	},
	{
		URL:           "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml",
		Category:      "industry",
		CategoryLabel: "산업",
		Source:        "The Verge",
	},
	{
		URL:           "https://www.technologyreview.com/topic/artificial-intelligence/feed",
		Category:      "research",
		CategoryLabel: "연구",
		Source:        "MIT Technology Review",
	},
	{
		URL:           "https://venturebeat.com/category/ai/feed/",
		Category:      "industry",
		CategoryLabel: "산업",
		Source:        "VentureBeat",
	},
}

// Feeds returns the configured feed descriptors.
func Feeds() []Feed { return feeds }
