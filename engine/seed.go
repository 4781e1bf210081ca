package engine

import "eduverse/models"

func strptr(s string) *string { return &s }

// seed fills the requested catalog collections with the initial data: a
// couple of students, an instructor and an admin, two quizzes, and three
// courses (one with a prerequisite, one without a quiz). On a first run all
// three are seeded; a partially damaged store gets only its gaps refilled.
func (e *Engine) seed(users, quizzes, courses bool) error {
	if users {
		e.users = seedUsers()
		if err := e.persist(keyUsers, e.users); err != nil {
			return err
		}
	}
	if quizzes {
		e.quizzes = seedQuizzes()
		if err := e.persist(keyQuizzes, e.quizzes); err != nil {
			return err
		}
	}
	if courses {
		e.courses = seedCourses()
		if err := e.persist(keyCourses, e.courses); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", Role: models.RoleStudent, AvatarURL: "https://picsum.photos/seed/alice/100"},
		{ID: "user-2", Name: "Bob Williams", Email: "bob@example.com", Role: models.RoleStudent, AvatarURL: "https://picsum.photos/seed/bob/100"},
		{ID: "user-3", Name: "Charlie Brown", Email: "charlie@example.com", Role: models.RoleInstructor, AvatarURL: "https://picsum.photos/seed/charlie/100"},
		{ID: "user-4", Name: "Diana Prince", Email: "diana@example.com", Role: models.RoleAdmin, AvatarURL: "https://picsum.photos/seed/diana/100"},
	}
}

func seedQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:    "quiz-1",
			Title: "React Basics Quiz",
			Questions: []models.Question{
				{ID: "q1-1", Text: "What is JSX?", Options: []string{"A JavaScript syntax extension", "A CSS preprocessor", "A database query language", "A templating engine"}, CorrectAnswerIndex: 0},
				{ID: "q1-2", Text: "What is the purpose of `useState`?", Options: []string{"To fetch data", "To manage state in a functional component", "To handle routing", "To perform side effects"}, CorrectAnswerIndex: 1},
				{ID: "q1-3", Text: "Which method is used to render a React element to the DOM?", Options: []string{"ReactDOM.render()", "React.mount()", "ReactDOM.createRoot().render()", "React.start()"}, CorrectAnswerIndex: 2},
			},
		},
		{
			ID:    "quiz-2",
			Title: "Advanced TypeScript Quiz",
			Questions: []models.Question{
				{ID: "q2-1", Text: "What is a Generic in TypeScript?", Options: []string{"A type of component", "A way to create reusable code components", "A specific class", "A linting rule"}, CorrectAnswerIndex: 1},
				{ID: "q2-2", Text: "What does the `keyof` operator do?", Options: []string{"Returns the keys of an object", "Creates a union type of an object's property names", "Accesses a private key", "Defines a foreign key"}, CorrectAnswerIndex: 1},
			},
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:            "course-1",
			Title:         "Introduction to React",
			Description:   "Learn the fundamentals of React, including components, state, and props.",
			Category:      "Web Development",
			ThumbnailURL:  "https://picsum.photos/seed/react/400/225",
			InstructorIDs: []string{"user-3"},
			Lessons: []models.Lesson{
				{ID: "l1-1", Title: "Welcome to React", Type: models.LessonVideo, Content: "https://www.youtube.com/embed/SqcY0GlETPk", DurationMinutes: 10, Attachments: []models.Attachment{}},
				{ID: "l1-2", Title: "Understanding Components", Type: models.LessonText, Content: "Components are the building blocks of any React app. A component is a self-contained, reusable piece of UI.", DurationMinutes: 15, Attachments: []models.Attachment{{ID: "a1", Name: "cheatsheet.pdf", Type: "PDF", URL: "#"}}},
				{ID: "l1-3", Title: "State and Props", Type: models.LessonVideo, Content: "https://www.youtube.com/embed/SqcY0GlETPk", DurationMinutes: 20, Attachments: []models.Attachment{}},
			},
			QuizID: strptr("quiz-1"),
		},
		{
			ID:                   "course-2",
			Title:                "Advanced TypeScript",
			Description:          "Master TypeScript with advanced concepts like generics, decorators, and mapped types.",
			Category:             "Web Development",
			ThumbnailURL:         "https://picsum.photos/seed/typescript/400/225",
			InstructorIDs:        []string{"user-3"},
			PrerequisiteCourseID: strptr("course-1"),
			Lessons: []models.Lesson{
				{ID: "l2-1", Title: "Generics Deep Dive", Type: models.LessonVideo, Content: "https://www.youtube.com/embed/SqcY0GlETPk", DurationMinutes: 25, Attachments: []models.Attachment{}},
				{ID: "l2-2", Title: "Decorators Explained", Type: models.LessonText, Content: "Decorators provide a way to add both annotations and a meta-programming syntax for classes and class members.", DurationMinutes: 20, Attachments: []models.Attachment{}},
			},
			QuizID: strptr("quiz-2"),
		},
		{
			ID:            "course-3",
			Title:         "UI/UX Design Principles",
			Description:   "Explore the core principles of user interface and user experience design for creating intuitive products.",
			Category:      "Design",
			ThumbnailURL:  "https://picsum.photos/seed/uiux/400/225",
			InstructorIDs: []string{"user-3"},
			Lessons: []models.Lesson{
				{ID: "l3-1", Title: "The Psychology of Design", Type: models.LessonVideo, Content: "https://www.youtube.com/embed/SqcY0GlETPk", DurationMinutes: 18, Attachments: []models.Attachment{}},
			},
		},
	}
}
