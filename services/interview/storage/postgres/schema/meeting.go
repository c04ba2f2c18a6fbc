package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

type Meeting struct {
	ent.Schema
}

func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("date"),
		field.String("time"),
		field.String("name"),
		field.String("interviewer_name"),
		field.String("meet_link"),
		field.String("role"),
		field.Text("job_desc").Optional(),
		field.String("experience").Optional(),
		field.String("skills").Optional(),
		field.Enum("status").
			NamedValues(
				"Scheduled", "Scheduled",
				"InProgress", "In Progress",
				"Completed", "Completed",
				"Cancelled", "Cancelled",
			).
			Default("Scheduled"),
		field.Bool("is_review_ready").Default(false),

		field.String("audio").Optional().Nillable(),
		field.Text("transcript").Optional().Nillable(),
		field.Text("expected_questions").Optional().Nillable(),

		// Review fields, filled by report generation.
		field.String("confidence").Optional().Nillable(),
		field.String("clarity").Optional().Nillable(),
		field.String("ques_count").Optional().Nillable(),
		field.String("correct_ans_count").Optional().Nillable(),
		field.String("wrong_ans_count").Optional().Nillable(),
		field.Text("tech_knowledge").Optional().Nillable(),
		field.Text("overall_fit").Optional().Nillable(),
		field.Text("ai_feedback").Optional().Nillable(),
		field.Text("what_went_well").Optional().Nillable(),
		field.Text("area_to_improve").Optional().Nillable(),
		field.Text("speech_patterns").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
