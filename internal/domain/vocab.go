package domain

// Sentinel values used by the record builder and placement engine.
const (
	// DefaultTeam is the contact-labeling fallback for members whose team is
	// empty, either from a blank answer or from TeamUnsure.
	DefaultTeam = "Member"
	// TeamUnsure is the raw form answer that, like a blank answer, maps to an
	// empty team for directory placement.
	TeamUnsure = "Unsure"
	// TeamChapterHead doubles as a title for chapter leadership.
	TeamChapterHead = "Chapter Head"
	// DefaultGrade is assigned when the grade answer is blank.
	DefaultGrade = "Senior"
	// GuardianLabel tags mirrored guardian contacts.
	GuardianLabel = "Guardian"
)

// Teams is the controlled vocabulary for the team column.
var Teams = []string{
	DefaultTeam,
	TeamChapterHead,
	"Logistics",
	"Finance",
	"Outreach",
	"Marketing",
}

// Schools is the controlled vocabulary the affiliation matcher scores against.
var Schools = []string{
	"Archbishop Mitty High School",
	"Bellarmine College Preparatory",
	"Cupertino High School",
	"Evergreen Valley High School",
	"Homestead High School",
	"Leland High School",
	"Lynbrook High School",
	"Mission San Jose High School",
	"Monta Vista High School",
	"Saint Francis High School",
	"Santa Clara High School",
	"The Harker School",
}

// Grades is the controlled vocabulary for the grade column.
var Grades = []string{"Freshman", "Sophomore", "Junior", "Senior"}
