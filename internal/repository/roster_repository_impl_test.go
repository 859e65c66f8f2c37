package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRosterCSV(t *testing.T) {
	text := `patientNumber,lastName,firstName,gender,dob,age,weight,allergies
100001,Lee,Anna,F,2010-01-01,14,45,Penicillin
"100002","Ngata","Tama","M","2018-06-14","7","23.5","No Known Allergies"

100006,O'Connor,Liam,M,2016-04-30,9,28
`

	patients := parseRosterCSV(text)

	assert.Len(t, patients, 3, "header and blank lines are skipped")

	assert.Equal(t, "100001", patients[0].PatientNumber)
	assert.Equal(t, "Lee", patients[0].LastName)
	assert.Equal(t, "Penicillin", patients[0].Allergies)

	assert.Equal(t, "Ngata", patients[1].LastName, "surrounding quotes are stripped")
	assert.Equal(t, "23.5", patients[1].Weight)

	assert.Equal(t, "O'Connor", patients[2].LastName)
	assert.Equal(t, "", patients[2].Allergies, "short rows pad trailing columns")
}

func TestParseRosterCSVEmptyInput(t *testing.T) {
	assert.Empty(t, parseRosterCSV(""))
	assert.Empty(t, parseRosterCSV("patientNumber,lastName,firstName,gender,dob,age,weight,allergies\n"))
}
