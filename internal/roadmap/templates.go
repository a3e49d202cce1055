package roadmap

import (
	"fmt"

	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/taxonomy"
)

// Per-level duration tables. Index is phase position; the estimate string
// covers the whole plan.
var phaseDurations = map[Level][]string{
	LevelBeginner:     {"3-4 months", "4-5 months", "3-4 months", "2-5 months"},
	LevelIntermediate: {"2-3 months", "3-4 months", "2-3 months", "1-2 months"},
	LevelAdvanced:     {"1-2 months", "2-3 months", "1-2 months", "1-2 months"},
}

var totalDurations = map[Level]string{
	LevelBeginner:     "12-18 months",
	LevelIntermediate: "8-12 months",
	LevelAdvanced:     "5-8 months",
}

// genericTopics seeds a plan for careers without catalog skill data.
var genericTopics = []string{
	"Core Concepts & Theory",
	"Fundamentals & Best Practices",
	"Industry Tools & Technologies",
	"Practical Applications",
	"Hands-on Projects",
	"Domain Knowledge",
	"Advanced Techniques",
	"Professional Skills",
	"Certifications & Credentials",
	"Portfolio Development",
	"Networking & Community",
	"Interview Preparation",
}

// Template builds the deterministic fallback roadmap for a career. Tracks
// with a hand-authored plan get it; every other career gets the generic
// three-phase plan derived from its catalog skills.
func Template(career *catalog.Career, track taxonomy.Track, level Level) *Roadmap {
	var rm *Roadmap
	switch track {
	case taxonomy.TrackSoftwareEngineering:
		rm = softwareEngineeringTemplate(career, level)
	case taxonomy.TrackDataScience:
		rm = dataScienceTemplate(career, level)
	case taxonomy.TrackAIEngineering:
		rm = aiEngineeringTemplate(career, level)
	default:
		rm = genericTemplate(career, level)
	}

	rm.SkillDomains = ClassifySkillDomains(career.Skills)
	return rm
}

func softwareEngineeringTemplate(career *catalog.Career, level Level) *Roadmap {
	durations := phaseDurations[level]
	return &Roadmap{
		Career:            career.Name,
		Overview:          fmt.Sprintf("A structured path into %s, from programming fundamentals to designing production systems.", career.Name),
		EstimatedDuration: totalDurations[level],
		MathPrerequisites: []string{"Discrete Mathematics", "Basic Algebra"},
		Phases: []Phase{
			{
				Name:        "Programming Fundamentals",
				Duration:    durations[0],
				Description: "Learn to program fluently in one language and build the habits of reading and debugging code.",
				Topics:      []string{"Python or JavaScript basics", "Control flow and functions", "Object-oriented programming", "Version control with Git", "Debugging and testing basics"},
				Difficulty:  "Beginner",
			},
			{
				Name:        "Data Structures & Algorithms",
				Duration:    durations[1],
				Description: "Build the problem-solving foundation that interviews and real systems both demand.",
				Topics:      []string{"Arrays, lists and hash maps", "Trees and graphs", "Sorting and searching", "Recursion and dynamic programming", "Complexity analysis"},
				Difficulty:  "Beginner to Intermediate",
			},
			{
				Name:        "Web Development",
				Duration:    durations[2],
				Description: "Ship full applications: frontend, backend, persistence and deployment.",
				Topics:      []string{"HTML, CSS and modern JavaScript", "A backend framework", "REST APIs and HTTP", "Relational and NoSQL databases", "Deployment and CI basics"},
				Difficulty:  "Intermediate",
			},
			{
				Name:        "System Design & Architecture",
				Duration:    durations[3],
				Description: "Reason about scale, reliability and trade-offs in large systems.",
				Topics:      []string{"Caching and load balancing", "Message queues and async processing", "Database scaling and sharding", "Microservices vs monoliths", "Designing for failure"},
				Difficulty:  "Advanced",
			},
		},
		Milestones: []Milestone{
			{Name: "First Working Program", Description: "Write, run and debug a complete small program on your own.", TargetDate: durations[0], Criteria: []string{"Solve 20 beginner exercises", "Publish a small project to GitHub"}},
			{Name: "Algorithm Fluency", Description: "Solve medium-difficulty algorithm problems without hints.", TargetDate: durations[1], Criteria: []string{"Complete 100 practice problems", "Explain time complexity of your solutions"}},
			{Name: "Full-Stack Application", Description: "Build and deploy a web application with a database.", TargetDate: durations[2], Criteria: []string{"Deploy a full-stack project", "Implement authentication and persistence"}},
		},
	}
}

func dataScienceTemplate(career *catalog.Career, level Level) *Roadmap {
	durations := phaseDurations[level]
	return &Roadmap{
		Career:            career.Name,
		Overview:          fmt.Sprintf("A statistics-first path into %s, pairing mathematical grounding with applied modeling work.", career.Name),
		EstimatedDuration: totalDurations[level],
		MathPrerequisites: []string{"Calculus", "Linear Algebra", "Probability & Statistics"},
		Phases: []Phase{
			{
				Name:        "Mathematics & Statistics Foundations",
				Duration:    durations[0],
				Description: "The statistical reasoning every analysis rests on.",
				Topics:      []string{"Descriptive statistics", "Probability distributions", "Hypothesis testing", "Linear algebra essentials", "Calculus for optimization"},
				Difficulty:  "Beginner",
			},
			{
				Name:        "Programming for Data Science",
				Duration:    durations[1],
				Description: "Python and its data stack, from raw files to clean analyses.",
				Topics:      []string{"Python fundamentals", "NumPy and pandas", "Data cleaning and wrangling", "SQL for analysis", "Visualization with matplotlib and seaborn"},
				Difficulty:  "Beginner to Intermediate",
			},
			{
				Name:        "Machine Learning Fundamentals",
				Duration:    durations[2],
				Description: "Core supervised and unsupervised methods and how to evaluate them honestly.",
				Topics:      []string{"Regression and classification", "Model evaluation and validation", "Feature engineering", "Clustering and dimensionality reduction", "scikit-learn workflows"},
				Difficulty:  "Intermediate",
			},
			{
				Name:        "Applied Projects & Specialization",
				Duration:    durations[3],
				Description: "End-to-end projects on real datasets, plus a chosen specialization.",
				Topics:      []string{"End-to-end project on a public dataset", "Experiment tracking and reproducibility", "Communicating results", "A specialization such as NLP or time series", "Kaggle competition participation"},
				Difficulty:  "Advanced",
			},
		},
		Milestones: []Milestone{
			{Name: "Statistical Literacy", Description: "Read and critique a statistical analysis correctly.", TargetDate: durations[0], Criteria: []string{"Complete a statistics course", "Run and interpret three hypothesis tests"}},
			{Name: "First Analysis", Description: "Take a messy dataset to a documented, reproducible analysis.", TargetDate: durations[1], Criteria: []string{"Clean and analyze a public dataset", "Publish the notebook"}},
			{Name: "First Model in Production Shape", Description: "Train, evaluate and package a model end to end.", TargetDate: durations[2], Criteria: []string{"Beat a sensible baseline", "Document evaluation methodology"}},
		},
	}
}

func aiEngineeringTemplate(career *catalog.Career, level Level) *Roadmap {
	durations := phaseDurations[level]
	return &Roadmap{
		Career:            career.Name,
		Overview:          fmt.Sprintf("A path into %s, from mathematical foundations through deep learning to deployed AI systems.", career.Name),
		EstimatedDuration: totalDurations[level],
		MathPrerequisites: []string{"Linear Algebra", "Calculus", "Probability & Statistics"},
		Phases: []Phase{
			{
				Name:        "Mathematical Foundations",
				Duration:    durations[0],
				Description: "The linear algebra and calculus that make neural networks legible.",
				Topics:      []string{"Vectors, matrices and tensor operations", "Gradients and the chain rule", "Probability and information theory", "Optimization basics", "Numerical computing with NumPy"},
				Difficulty:  "Beginner",
			},
			{
				Name:        "Machine Learning Basics",
				Duration:    durations[1],
				Description: "Classical ML as the baseline deep learning must beat.",
				Topics:      []string{"Supervised learning workflows", "Loss functions and regularization", "Model evaluation", "scikit-learn practice", "Data pipelines"},
				Difficulty:  "Beginner to Intermediate",
			},
			{
				Name:        "Deep Learning",
				Duration:    durations[2],
				Description: "Modern architectures and the craft of training them.",
				Topics:      []string{"Neural network fundamentals", "CNNs and computer vision", "Transformers and attention", "PyTorch or TensorFlow", "Transfer learning and fine-tuning"},
				Difficulty:  "Intermediate to Advanced",
			},
			{
				Name:        "AI Systems & Deployment",
				Duration:    durations[3],
				Description: "Serving, monitoring and iterating on models in production.",
				Topics:      []string{"Model serving and APIs", "LLM application patterns", "Evaluation and monitoring in production", "MLOps tooling", "Responsible AI practices"},
				Difficulty:  "Advanced",
			},
		},
		Milestones: []Milestone{
			{Name: "Math Checkpoint", Description: "Derive and implement gradient descent from scratch.", TargetDate: durations[0], Criteria: []string{"Implement backprop for a small network", "Pass a linear algebra self-assessment"}},
			{Name: "First Trained Network", Description: "Train a deep model that beats a classical baseline.", TargetDate: durations[2], Criteria: []string{"Train a CNN on an image dataset", "Report a fair baseline comparison"}},
			{Name: "Deployed Model", Description: "Put a model behind an API with basic monitoring.", TargetDate: durations[3], Criteria: []string{"Serve a model over HTTP", "Add latency and accuracy monitoring"}},
		},
	}
}

// genericTemplate covers careers with no hand-authored plan: three phases
// filled from the career's catalog skills, or from generic topics when the
// catalog has nothing.
func genericTemplate(career *catalog.Career, level Level) *Roadmap {
	topics := career.Skills
	if len(topics) == 0 {
		topics = genericTopics
	}

	durations := phaseDurations[level]
	phases := []Phase{
		{Name: "Foundation Building", Duration: durations[0], Description: fmt.Sprintf("Core knowledge and fundamentals for %s.", career.Name), Difficulty: "Beginner"},
		{Name: "Skill Development", Duration: durations[1], Description: fmt.Sprintf("Hands-on practice with the key skills of %s.", career.Name), Difficulty: "Intermediate"},
		{Name: "Professional Practice", Duration: durations[2], Description: fmt.Sprintf("Applied projects and career preparation for %s.", career.Name), Difficulty: "Advanced"},
	}

	// First five topics to phase one, next five to phase two, remainder to
	// phase three.
	for i, topic := range topics {
		switch {
		case i < 5:
			phases[0].Topics = append(phases[0].Topics, topic)
		case i < 10:
			phases[1].Topics = append(phases[1].Topics, topic)
		default:
			phases[2].Topics = append(phases[2].Topics, topic)
		}
	}

	// No phase may surface empty; reuse the leading topics as review work.
	backfill := topics
	if len(backfill) > 3 {
		backfill = backfill[:3]
	}
	for i := range phases {
		if len(phases[i].Topics) == 0 {
			phases[i].Topics = append([]string(nil), backfill...)
		}
	}

	return &Roadmap{
		Career:            career.Name,
		Overview:          fmt.Sprintf("A three-phase learning plan for becoming a %s.", career.Name),
		EstimatedDuration: totalDurations[level],
		Phases:            phases,
		Milestones: []Milestone{
			{Name: "Foundations Complete", Description: fmt.Sprintf("Core concepts of %s are in place.", career.Name), TargetDate: durations[0], Criteria: []string{"Finish introductory coursework", "Summarize the field's key ideas"}},
			{Name: "Skills Demonstrated", Description: "Key skills applied in practice work.", TargetDate: durations[1], Criteria: []string{"Complete two practice projects", "Collect feedback from a practitioner"}},
			{Name: "Portfolio Ready", Description: "A presentable body of work exists.", TargetDate: durations[2], Criteria: []string{"Publish a portfolio", "Complete a mock interview"}},
		},
	}
}
