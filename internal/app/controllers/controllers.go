package controllers

import (
	"github.com/yigit/unicourse/internal/pkg/helpers"
)

// memberCourseOperands reads and parses the memberId and courseId lines.
// Both are parsed before either is resolved.
func memberCourseOperands(in *helpers.LineReader) (memberID, courseID int, err error) {
	memberLine, err := in.Operand("member id")
	if err != nil {
		return 0, 0, err
	}
	courseLine, err := in.Operand("course id")
	if err != nil {
		return 0, 0, err
	}
	if memberID, err = helpers.ParseID(memberLine); err != nil {
		return 0, 0, err
	}
	if courseID, err = helpers.ParseID(courseLine); err != nil {
		return 0, 0, err
	}
	return memberID, courseID, nil
}
