package policy

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func TestCanSeeCourse(t *testing.T) {
	private := &courseModels.Course{Status: courseModels.StatusPrivate}
	public := &courseModels.Course{Status: courseModels.StatusPublic}

	assert.True(t, CanSeeCourse(RoleAdmin, private))
	assert.True(t, CanSeeCourse(RoleUser, public))
	assert.True(t, CanSeeCourse("", public))
	assert.False(t, CanSeeCourse(RoleUser, private))
	assert.False(t, CanSeeCourse("", private))
}

func TestListPublicOnly(t *testing.T) {
	assert.False(t, ListPublicOnly(RoleAdmin))
	assert.True(t, ListPublicOnly(RoleUser))
	assert.True(t, ListPublicOnly(""))
}

func TestCanAccessModule(t *testing.T) {
	publicCourse := &courseModels.Course{Status: courseModels.StatusPublic}
	privateCourse := &courseModels.Course{Status: courseModels.StatusPrivate}
	publicModule := &courseModels.Module{Status: courseModels.StatusPublic}
	privateModule := &courseModels.Module{Status: courseModels.StatusPrivate}

	tests := []struct {
		name     string
		course   *courseModels.Course
		module   *courseModels.Module
		enrolled bool
		want     bool
	}{
		{"enrolled in public content", publicCourse, publicModule, true, true},
		{"not enrolled", publicCourse, publicModule, false, false},
		{"private module", publicCourse, privateModule, true, false},
		{"course went private", privateCourse, publicModule, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessModule(tt.course, tt.module, tt.enrolled))
		})
	}
}

func TestCanBrowseModule(t *testing.T) {
	publicCourse := &courseModels.Course{Status: courseModels.StatusPublic}
	privateCourse := &courseModels.Course{Status: courseModels.StatusPrivate}

	assert.True(t, CanBrowseModule(publicCourse, &courseModels.Module{Status: courseModels.StatusPublic}))
	assert.False(t, CanBrowseModule(publicCourse, &courseModels.Module{Status: courseModels.StatusPrivate}))
	assert.False(t, CanBrowseModule(privateCourse, &courseModels.Module{Status: courseModels.StatusPublic}))
}
