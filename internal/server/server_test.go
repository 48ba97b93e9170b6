package server

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unicourse/internal/bootstrap"
	"github.com/yigit/unicourse/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Level = "disabled"
	cfg.Logging.Format = "json"
	return cfg
}

// runInput feeds input to a freshly seeded server and returns stdout and the run error
func runInput(t *testing.T, input string) (string, *Server, error) {
	t.Helper()
	var out bytes.Buffer
	srv, err := NewServerWithConfig(testConfig(), zerolog.Nop(), strings.NewReader(input), &out)
	require.NoError(t, err)
	runErr := srv.Run(context.Background())
	return out.String(), srv, runErr
}

func lines(ls ...string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

func TestRun_Scenarios(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:    "student at max enrollment",
			input:   "enroll\n1\n4\n",
			want:    lines("Maximum enrollment is reached for the student"),
			wantErr: true,
		},
		{
			name:  "enroll then drop",
			input: "enroll\n2\n3\ndrop\n2\n3\n",
			want:  lines("Enrolled successfully", "Dropped successfully"),
		},
		{
			name:    "enroll twice",
			input:   "enroll\n3\n1\nenroll\n3\n1\n",
			want:    lines("Enrolled successfully", "Student is already enrolled in this course"),
			wantErr: true,
		},
		{
			name:    "existing course",
			input:   "course\nalgorithms\nmaster\n",
			want:    lines("Course exists"),
			wantErr: true,
		},
		{
			name:    "reserved student name",
			input:   "student\ncourse\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "professor with full load",
			input:   "teach\n4\n3\n",
			want:    lines("Professor's load is complete"),
			wantErr: true,
		},
		{
			name:  "new professor with a reused name",
			input: "professor\nBob\n",
			want:  lines("Added successfully"),
		},
		{
			name:    "exempt twice",
			input:   "exempt\n6\n6\nexempt\n6\n6\n",
			want:    lines("Professor is exempted", "Professor is not teaching this course"),
			wantErr: true,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:    "unknown command stops the run",
			input:   "student\njohn\nhello\nstudent\nmary\n",
			want:    lines("Added successfully", "Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "commands are case sensitive",
			input:   "Student\njohn\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "course becomes full",
			input:   "enroll\n3\n1\nstudent\nmary\nenroll\n7\n1\n",
			want:    lines("Enrolled successfully", "Added successfully", "Course is full"),
			wantErr: true,
		},
		{
			name:    "course id zero",
			input:   "enroll\n2\n0\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "course id past the end",
			input:   "drop\n2\n8\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "professor id used for enroll",
			input:   "enroll\n4\n1\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "student id used for teach",
			input:   "teach\n1\n7\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "malformed id",
			input:   "enroll\ntwo\n3\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "bad course level",
			input:   "course\nrobotics\nphd\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:  "course level and name are folded",
			input: "course\nRobotics_Lab\nmaster\nteach\n6\n8\n",
			want:  lines("Added successfully", "Professor is successfully assigned to teach this course"),
		},
		{
			name:    "course exists is case insensitive",
			input:   "course\nALGORITHMS\nbachelor\n",
			want:    lines("Course exists"),
			wantErr: true,
		},
		{
			name:    "course exists is reported before the level is read",
			input:   "course\nalgorithms\n",
			want:    lines("Course exists"),
			wantErr: true,
		},
		{
			name:    "reserved course name",
			input:   "course\nmaster\nbachelor\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "double underscore course name",
			input:   "course\njava__advanced\nmaster\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "missing operand",
			input:   "enroll\n2\n",
			want:    lines("Wrong inputs"),
			wantErr: true,
		},
		{
			name:    "drop course not taken",
			input:   "drop\n3\n1\n",
			want:    lines("Student is not enrolled in this course"),
			wantErr: true,
		},
		{
			name:    "already teaching",
			input:   "teach\n6\n6\n",
			want:    lines("Professor is already teaching this course"),
			wantErr: true,
		},
		{
			name:  "windows line endings",
			input: "student\r\nmary\r\nenroll\r\n7\r\n7\r\n",
			want:  lines("Added successfully", "Enrolled successfully"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runInput(t, tc.input)

			assert.Equal(t, tc.want, out)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_NewMembersContinueSharedSequence(t *testing.T) {
	out, srv, err := runInput(t, "professor\nBob\nstudent\nzed\n")
	require.NoError(t, err)
	assert.Equal(t, lines("Added successfully", "Added successfully"), out)

	members := srv.Dependencies().Repos.MemberRepository
	p, err := members.GetProfessorByID(7)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.Name)

	s, err := members.GetStudentByID(8)
	require.NoError(t, err)
	assert.Equal(t, "zed", s.Name)
}

func TestRun_LongMemberName(t *testing.T) {
	name := strings.Repeat("a", 70000)

	out, srv, err := runInput(t, "student\n"+name+"\n")

	require.NoError(t, err)
	assert.Equal(t, lines("Added successfully"), out)
	s, err := srv.Dependencies().Repos.MemberRepository.GetStudentByID(7)
	require.NoError(t, err)
	assert.Equal(t, name, s.Name)
}

func TestRun_InvariantsHoldAfterMixedCommands(t *testing.T) {
	input := strings.Join([]string{
		"course", "robotics", "bachelor",
		"student", "mary",
		"enroll", "7", "8",
		"enroll", "7", "7",
		"enroll", "3", "8",
		"drop", "1", "2",
		"exempt", "4", "1",
		"teach", "4", "8",
		"professor", "olga",
		"teach", "8", "7",
	}, "\n") + "\n"

	out, srv, err := runInput(t, input)
	require.NoError(t, err, out)

	repos := srv.Dependencies().Repos
	for _, s := range repos.MemberRepository.GetAllStudents() {
		assert.LessOrEqual(t, len(s.EnrolledCourses()), 3)
		for _, c := range s.EnrolledCourses() {
			assert.True(t, c.HasStudent(s), "course %d misses student %d", c.ID, s.ID)
		}
	}
	for i, c := range repos.CourseRepository.GetAll() {
		assert.Equal(t, i+1, c.ID)
		assert.LessOrEqual(t, len(c.EnrolledStudents()), 3)
		for _, s := range c.EnrolledStudents() {
			assert.True(t, s.IsEnrolledIn(c), "student %d misses course %d", s.ID, c.ID)
		}
	}
	for _, p := range repos.MemberRepository.GetAllProfessors() {
		assigned := p.AssignedCourses()
		assert.LessOrEqual(t, len(assigned), 2)
		seen := map[int]bool{}
		for _, c := range assigned {
			assert.False(t, seen[c.ID], "professor %d lists course %d twice", p.ID, c.ID)
			seen[c.ID] = true
		}
	}
}

func TestServer_EmptyRegistry(t *testing.T) {
	var out bytes.Buffer
	deps := bootstrap.NewDependencies(zerolog.Nop())
	srv := newServer(testConfig(), zerolog.Nop(), deps, strings.NewReader("enroll\n1\n1\n"), &out)

	err := srv.Run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, lines("Wrong inputs"), out.String())
}
