package resource

import "github.com/riabhaumik/PathwiseAI/internal/taxonomy"

// Curated returns the hand-picked resources for a career track. The table is
// always appended to provider results, not only when providers fail: curated
// entries act as a quality floor for every roadmap.
func Curated(track taxonomy.Track) []Record {
	return curatedTables[track]
}

// GenericFloor returns the platform-level entries appended when aggregation
// would otherwise produce fewer than the minimum number of resources.
func GenericFloor() []Record {
	return []Record{
		{
			Title:       "Coursera - Online Courses",
			Description: "University-backed courses across every STEM discipline",
			URL:         "https://www.coursera.org/",
			Platform:    "Coursera",
			Duration:    "Self-paced",
			Rating:      "4.6",
			Instructor:  "Various",
			Difficulty:  "All Levels",
			Tags:        []string{"courses", "certificates", "general"},
		},
		{
			Title:       "Khan Academy - Free Learning",
			Description: "Free foundational courses in math, science and computing",
			URL:         "https://www.khanacademy.org/",
			Platform:    "Khan Academy",
			Duration:    "Self-paced",
			Rating:      "4.8",
			Instructor:  "Khan Academy",
			Difficulty:  "All Levels",
			Tags:        []string{"foundations", "free", "general"},
		},
	}
}

// PhasePlaceholders synthesizes generic entries for a phase that would
// otherwise surface with too few resources, tagged with that phase's
// difficulty.
func PhasePlaceholders(phaseName, difficulty string) []Record {
	return []Record{
		{
			Title:       "freeCodeCamp - " + phaseName,
			Description: "Hands-on exercises and projects covering " + phaseName,
			URL:         "https://www.freecodecamp.org/",
			Platform:    "freeCodeCamp",
			Duration:    "Self-paced",
			Rating:      "4.7",
			Instructor:  "freeCodeCamp",
			Difficulty:  difficulty,
			Tags:        []string{"practice", "free"},
		},
		{
			Title:       "MIT OpenCourseWare - " + phaseName,
			Description: "University lectures and materials relevant to " + phaseName,
			URL:         "https://ocw.mit.edu/",
			Platform:    "MIT OCW",
			Duration:    "Self-paced",
			Rating:      "4.9",
			Instructor:  "MIT Faculty",
			Difficulty:  difficulty,
			Tags:        []string{"lectures", "free"},
		},
	}
}

var curatedTables = map[taxonomy.Track][]Record{
	taxonomy.TrackSoftwareEngineering: {
		{
			Title:       "LeetCode - Programming Practice",
			Description: "Practice coding problems and algorithms for technical interviews",
			URL:         "https://leetcode.com/",
			Platform:    "LeetCode",
			Duration:    "Ongoing",
			Rating:      "4.8",
			Instructor:  "Various",
			Difficulty:  "Beginner to Advanced",
			Tags:        []string{"coding", "algorithms", "data structures", "interview prep"},
		},
		{
			Title:       "HackerRank - Coding Challenges",
			Description: "Practice coding skills with challenges and competitions",
			URL:         "https://www.hackerrank.com/",
			Platform:    "HackerRank",
			Duration:    "Ongoing",
			Rating:      "4.7",
			Instructor:  "Various",
			Difficulty:  "Beginner to Advanced",
			Tags:        []string{"coding", "challenges", "competitions", "skills"},
		},
		{
			Title:       "MDN Web Docs",
			Description: "Comprehensive web development documentation and tutorials",
			URL:         "https://developer.mozilla.org/",
			Platform:    "Mozilla",
			Duration:    "Reference",
			Rating:      "4.9",
			Instructor:  "Mozilla",
			Difficulty:  "All Levels",
			Tags:        []string{"web development", "documentation", "tutorials", "reference"},
		},
		{
			Title:       "System Design Primer",
			Description: "Learn how to design large-scale systems",
			URL:         "https://github.com/donnemartin/system-design-primer",
			Platform:    "GitHub",
			Duration:    "Self-paced",
			Rating:      "4.9",
			Instructor:  "Donne Martin",
			Difficulty:  "Intermediate to Advanced",
			Tags:        []string{"system design", "architecture", "scalability", "distributed systems"},
		},
	},
	taxonomy.TrackDataScience: {
		{
			Title:       "Machine Learning Course by Andrew Ng",
			Description: "Stanford's famous machine learning course",
			URL:         "https://www.coursera.org/learn/machine-learning",
			Platform:    "Coursera",
			Duration:    "11 weeks",
			Rating:      "4.9",
			Instructor:  "Andrew Ng",
			Difficulty:  "Intermediate",
			Tags:        []string{"machine learning", "AI", "statistics", "algorithms"},
		},
		{
			Title:       "Statistics and Probability Course",
			Description: "Comprehensive statistics course for data science",
			URL:         "https://www.khanacademy.org/math/statistics-probability",
			Platform:    "Khan Academy",
			Duration:    "8-12 weeks",
			Rating:      "4.7",
			Instructor:  "Khan Academy",
			Difficulty:  "Beginner to Intermediate",
			Tags:        []string{"statistics", "probability", "data analysis", "mathematics"},
		},
		{
			Title:       "Python for Data Science Handbook",
			Description: "Essential Python libraries for data analysis",
			URL:         "https://jakevdp.github.io/PythonDataScienceHandbook/",
			Platform:    "GitHub",
			Duration:    "Self-paced",
			Rating:      "4.8",
			Instructor:  "Jake VanderPlas",
			Difficulty:  "Intermediate",
			Tags:        []string{"python", "pandas", "numpy", "data analysis"},
		},
		{
			Title:       "Kaggle - Data Science Competitions",
			Description: "Practice data science with real-world datasets and competitions",
			URL:         "https://www.kaggle.com/",
			Platform:    "Kaggle",
			Duration:    "Ongoing",
			Rating:      "4.8",
			Instructor:  "Community",
			Difficulty:  "All Levels",
			Tags:        []string{"data science", "competitions", "datasets", "machine learning"},
		},
	},
	taxonomy.TrackAIEngineering: {
		{
			Title:       "Deep Learning Specialization",
			Description: "Comprehensive deep learning course by Andrew Ng",
			URL:         "https://www.coursera.org/specializations/deep-learning",
			Platform:    "Coursera",
			Duration:    "16 weeks",
			Rating:      "4.8",
			Instructor:  "Andrew Ng",
			Difficulty:  "Intermediate to Advanced",
			Tags:        []string{"deep learning", "neural networks", "AI", "machine learning"},
		},
		{
			Title:       "Fast.ai - Practical Deep Learning",
			Description: "Practical deep learning for coders",
			URL:         "https://course.fast.ai/",
			Platform:    "Fast.ai",
			Duration:    "8 weeks",
			Rating:      "4.9",
			Instructor:  "Jeremy Howard",
			Difficulty:  "Intermediate",
			Tags:        []string{"deep learning", "practical", "pytorch", "computer vision"},
		},
		{
			Title:       "3Blue1Brown - Neural Networks",
			Description: "Intuitive explanations of neural networks and deep learning",
			URL:         "https://www.youtube.com/playlist?list=PLZHQObOWTQDNU6R1_67000Dx_ZCJB-3pi",
			Platform:    "YouTube",
			Duration:    "Self-paced",
			Rating:      "4.9",
			Instructor:  "Grant Sanderson",
			Difficulty:  "Beginner to Intermediate",
			Tags:        []string{"neural networks", "deep learning", "mathematics", "visualization"},
		},
		{
			Title:       "Papers With Code",
			Description: "Latest machine learning research papers with code implementations",
			URL:         "https://paperswithcode.com/",
			Platform:    "Papers With Code",
			Duration:    "Ongoing",
			Rating:      "4.8",
			Instructor:  "Research Community",
			Difficulty:  "Advanced",
			Tags:        []string{"research", "papers", "implementations", "state-of-the-art"},
		},
	},
	taxonomy.TrackMathematics: {
		{
			Title:       "MIT OpenCourseWare - Mathematics",
			Description: "Free mathematics courses from MIT",
			URL:         "https://ocw.mit.edu/courses/mathematics/",
			Platform:    "MIT OCW",
			Duration:    "Self-paced",
			Rating:      "4.9",
			Instructor:  "MIT Faculty",
			Difficulty:  "Intermediate to Advanced",
			Tags:        []string{"mathematics", "calculus", "linear algebra", "advanced math"},
		},
		{
			Title:       "Khan Academy - Mathematics",
			Description: "Comprehensive mathematics courses from basic to advanced",
			URL:         "https://www.khanacademy.org/math",
			Platform:    "Khan Academy",
			Duration:    "Self-paced",
			Rating:      "4.8",
			Instructor:  "Khan Academy",
			Difficulty:  "All Levels",
			Tags:        []string{"mathematics", "algebra", "calculus", "statistics"},
		},
		{
			Title:       "3Blue1Brown - Mathematics",
			Description: "Beautiful visual explanations of mathematical concepts",
			URL:         "https://www.youtube.com/c/3blue1brown",
			Platform:    "YouTube",
			Duration:    "Self-paced",
			Rating:      "4.9",
			Instructor:  "Grant Sanderson",
			Difficulty:  "All Levels",
			Tags:        []string{"mathematics", "visualization", "intuition", "concepts"},
		},
	},
}
