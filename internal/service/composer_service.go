package service

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/nicshik/mathstat-quiz-backend/config"
	"github.com/nicshik/mathstat-quiz-backend/internal/model"
)

// subjectFormat yields an identical subject for every submission of the
// same task id.
const subjectFormat = "[Матстат Квиз] Задача %s - Обратная связь"

// timeLayout matches toLocaleString('ru-RU') as the front end displays it.
const timeLayout = "02.01.2006, 15:04:05"

const htmlBody = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #667eea; border-bottom: 3px solid #667eea; padding-bottom: 10px;">
        Новая обратная связь - Mathstat Quiz
    </h2>

    <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #667eea; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #333;">Информация о вопросе:</h3>
        <table style="width: 100%; border-collapse: collapse;">
            <tr>
                <td style="padding: 8px 0; font-weight: bold; width: 180px;">Задача:</td>
                <td style="padding: 8px 0;">{{.TaskID}}</td>
            </tr>
            <tr>
                <td style="padding: 8px 0; font-weight: bold;">Текст вопроса:</td>
                <td style="padding: 8px 0;">{{.QuestionText}}</td>
            </tr>
            <tr>
                <td style="padding: 8px 0; font-weight: bold;">Ответ студента:</td>
                <td style="padding: 8px 0; color: #dc3545;">{{.UserAnswer}}</td>
            </tr>
            <tr>
                <td style="padding: 8px 0; font-weight: bold;">Правильный ответ:</td>
                <td style="padding: 8px 0; color: #28a745;">{{.CorrectAnswer}}</td>
            </tr>
            <tr>
                <td style="padding: 8px 0; font-weight: bold;">Время:</td>
                <td style="padding: 8px 0;">{{.Time}}</td>
            </tr>
        </table>
    </div>

    <div style="background: white; padding: 15px; border: 1px solid #ddd; border-radius: 5px; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #333;">Описание неточности:</h3>
        <p style="line-height: 1.6; color: #555;">{{range $i, $line := .DescriptionLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
    </div>

    <div style="font-size: 12px; color: #888; margin-top: 30px; padding-top: 15px; border-top: 1px solid #eee;">
        <p><strong>User-Agent:</strong> {{.UserAgent}}</p>
        <p><strong>Frontend:</strong> <a href="{{.FrontendURL}}">Mathstat Quiz</a></p>
    </div>
</div>
`

const textBody = `НОВАЯ ОБРАТНАЯ СВЯЗЬ - MATHSTAT QUIZ
========================================

ИНФОРМАЦИЯ О ВОПРОСЕ:
- Задача: {{.TaskID}}
- Текст вопроса: {{.QuestionText}}
- Ответ студента: {{.UserAnswer}}
- Правильный ответ: {{.CorrectAnswer}}
- Время: {{.Time}}

ОПИСАНИЕ НЕТОЧНОСТИ:
{{.Description}}

========================================
User-Agent: {{.UserAgent}}
Frontend: {{.FrontendURL}}
`

type mailTemplateData struct {
	TaskID           string
	QuestionText     string
	UserAnswer       string
	CorrectAnswer    string
	Time             string
	Description      string
	DescriptionLines []string
	UserAgent        string
	FrontendURL      string
}

// ComposerService renders one submission into the two equivalent mail
// bodies. Composition is pure: same submission and time in, byte-identical
// message out.
type ComposerService interface {
	Compose(sub model.FeedbackSubmission, at time.Time) (model.ComposedMessage, error)
}

type composerService struct {
	frontendURL string
	loc         *time.Location
	html        *htmltemplate.Template
	text        *texttemplate.Template
}

func NewComposerService(cfg *config.Config) ComposerService {
	return &composerService{
		frontendURL: cfg.FrontendURL,
		loc:         moscowLocation(),
		html:        htmltemplate.Must(htmltemplate.New("feedback_html").Parse(htmlBody)),
		text:        texttemplate.Must(texttemplate.New("feedback_text").Parse(textBody)),
	}
}

func (s *composerService) Compose(sub model.FeedbackSubmission, at time.Time) (model.ComposedMessage, error) {
	data := mailTemplateData{
		TaskID:        sub.TaskID,
		QuestionText:  sub.QuestionText,
		UserAnswer:    sub.UserAnswer,
		CorrectAnswer: sub.CorrectAnswer,
		Time:          at.In(s.loc).Format(timeLayout),
		// The plain body preserves the description verbatim; only the HTML
		// line split normalizes CRLF so <br> replaces the whole terminator.
		Description:      sub.Description,
		DescriptionLines: strings.Split(strings.ReplaceAll(sub.Description, "\r\n", "\n"), "\n"),
		UserAgent:        sub.UserAgent,
		FrontendURL:      s.frontendURL,
	}
	if data.UserAgent == "" {
		data.UserAgent = "N/A"
	}

	var htmlBuf strings.Builder
	if err := s.html.Execute(&htmlBuf, data); err != nil {
		return model.ComposedMessage{}, fmt.Errorf("error rendering HTML body: %w", err)
	}

	var textBuf strings.Builder
	if err := s.text.Execute(&textBuf, data); err != nil {
		return model.ComposedMessage{}, fmt.Errorf("error rendering text body: %w", err)
	}

	return model.ComposedMessage{
		Subject: fmt.Sprintf(subjectFormat, sub.TaskID),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

// moscowLocation returns Moscow civil time regardless of the server's own
// timezone. Hosts without tzdata fall back to a fixed UTC+3 zone, which has
// matched Moscow since 2014.
func moscowLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}
