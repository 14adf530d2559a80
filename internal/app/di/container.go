package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authhandler "school_backend/internal/feature/auth/transport/handler"
	authusecase "school_backend/internal/feature/auth/usecase"
	classadapters "school_backend/internal/feature/classes/adapters"
	classhandler "school_backend/internal/feature/classes/transport/handler"
	classusecase "school_backend/internal/feature/classes/usecase"
	resultadapters "school_backend/internal/feature/results/adapters"
	resulthandler "school_backend/internal/feature/results/transport/handler"
	resultusecase "school_backend/internal/feature/results/usecase"
	studentadapters "school_backend/internal/feature/students/adapters"
	studenthandler "school_backend/internal/feature/students/transport/handler"
	studentusecase "school_backend/internal/feature/students/usecase"
	subjectadapters "school_backend/internal/feature/subjects/adapters"
	subjecthandler "school_backend/internal/feature/subjects/transport/handler"
	subjectusecase "school_backend/internal/feature/subjects/usecase"
	summaryhandler "school_backend/internal/feature/summary/transport/handler"
	summaryusecase "school_backend/internal/feature/summary/usecase"
	teacheradapters "school_backend/internal/feature/teachers/adapters"
	teacherhandler "school_backend/internal/feature/teachers/transport/handler"
	teacherusecase "school_backend/internal/feature/teachers/usecase"
	useradapters "school_backend/internal/feature/users/adapters"
	userhandler "school_backend/internal/feature/users/transport/handler"
	userusecase "school_backend/internal/feature/users/usecase"
	"school_backend/internal/platform/cache"
	"school_backend/internal/platform/config"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Users    *userhandler.UserHandler
	Classes  *classhandler.ClassHandler
	Subjects *subjecthandler.SubjectHandler
	Teachers *teacherhandler.TeacherHandler
	Students *studenthandler.StudentHandler
	Results  *resulthandler.ResultHandler
	Auth     *authhandler.AuthHandler
	Summary  *summaryhandler.SummaryHandler
}

// Container holds the wired application graph.
type Container struct {
	Handlers Handlers
	// SummaryCache is invalidated by the router after successful writes.
	SummaryCache *cache.CachingCountRepository
}

// NewContainer wires repositories, usecases and handlers. rdb may be nil.
func NewContainer(cfg config.App, db *gorm.DB, rdb *redis.Client) *Container {
	// Repository
	userRepo := useradapters.NewUserRepository(db)
	classRepo := classadapters.NewClassRepository(db)
	subjectRepo := subjectadapters.NewSubjectRepository(db)
	teacherRepo := teacheradapters.NewTeacherRepository(db)
	studentRepo := studentadapters.NewStudentRepository(db)
	resultRepo := resultadapters.NewResultRepository(db)
	summaryRepo := NewSummaryRepository(rdb, db, cfg.SummaryCacheTTL)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	classUC := classusecase.NewClassUsecase(classRepo)
	subjectUC := subjectusecase.NewSubjectUsecase(subjectRepo)
	teacherUC := teacherusecase.NewTeacherUsecase(teacherRepo)
	studentUC := studentusecase.NewStudentUsecase(studentRepo)
	resultUC := resultusecase.NewResultUsecase(resultRepo)
	authUC := authusecase.NewAuthUsecase(studentRepo, teacherRepo)
	summaryUC := summaryusecase.NewSummaryUsecase(summaryRepo)

	return &Container{
		Handlers: Handlers{
			Users:    userhandler.NewUserHandler(userUC),
			Classes:  classhandler.NewClassHandler(classUC),
			Subjects: subjecthandler.NewSubjectHandler(subjectUC),
			Teachers: teacherhandler.NewTeacherHandler(teacherUC),
			Students: studenthandler.NewStudentHandler(studentUC),
			Results:  resulthandler.NewResultHandler(resultUC),
			Auth:     authhandler.NewAuthHandler(authUC),
			Summary:  summaryhandler.NewSummaryHandler(summaryUC),
		},
		SummaryCache: summaryRepo,
	}
}
