package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"slices"
	"strconv"
	"strings"

	"pgms/config"
	"pgms/infras/broker"
	"pgms/infras/otel"
	"pgms/infras/s3"
	"pgms/internal/domains/admin/model"
	"pgms/internal/domains/admin/model/dto"
	"pgms/internal/domains/admin/repository"
	"pgms/internal/tenancy/schema"
	"pgms/shared"
	"pgms/shared/cache"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile = "admin:profile"

	photoDirectory       = "admins"
	hostelPhotoDirectory = "hostels"
	maxPhotoSizeBytes    = 5 << 20
	provisionPageSize    = 100
)

var photoContentTypes = []string{"image/jpeg", "image/png", "image/webp"}

type Admin interface {
	GetProfile(ctx context.Context, adminID int64) (dto.AdminResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdminsResponse, error)
	UpdateProfile(ctx context.Context, adminID int64, req dto.UpdateProfileRequest) (dto.AdminResponse, error)
	UploadPhoto(ctx context.Context, adminID int64, file multipart.File, header *multipart.FileHeader) (dto.PhotoResponse, error)
	DeletePhoto(ctx context.Context, adminID int64) error
	// UploadHostelPhoto appends a photo to the hostel gallery.
	UploadHostelPhoto(ctx context.Context, adminID int64, file multipart.File, header *multipart.FileHeader) (dto.HostelPhotoResponse, error)
	ActivateSubscription(ctx context.Context, adminID int64, subscription dto.Subscription) (dto.AdminResponse, error)
	// Delete removes the account. Its tenant tables are dropped only when
	// TENANCY_DROP_TABLES_ON_DELETE is set.
	Delete(ctx context.Context, adminID int64) error
	SetFrozen(ctx context.Context, adminID int64, frozen bool) (dto.AdminResponse, error)
	TableStatus(ctx context.Context, adminID int64) (dto.TableStatus, error)
	RepairTables(ctx context.Context, adminID int64) (dto.RepairTablesResponse, error)
	// ProvisionAll repairs the tables of every account and reports how many
	// could not be completed.
	ProvisionAll(ctx context.Context) (failed int, err error)
}

type serviceImpl struct {
	repo        repository.Admin
	provisioner schema.Provisioner
	storage     s3.S3
	cache       cache.RedisCache
	publisher   broker.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Admin,
	provisioner schema.Provisioner,
	storage s3.S3,
	cache cache.RedisCache,
	publisher broker.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		repo:        repo,
		provisioner: provisioner,
		storage:     storage,
		cache:       cache,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

func profileCacheKey(adminID int64) string {
	return shared.BuildCacheKey(cacheGetProfile, strconv.FormatInt(adminID, 10))
}

func (s *serviceImpl) invalidate(ctx context.Context, adminID int64) {
	if err := s.cache.Delete(ctx, profileCacheKey(adminID)); err != nil {
		log.Warn().Err(err).Int64("admin_id", adminID).Msg("failed to invalidate admin profile cache")
	}
}

func (s *serviceImpl) load(ctx context.Context, adminID int64) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to get admin")

		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return admin, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, adminID int64) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := profileCacheKey(adminID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	res.FromModel(*admin)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save admin profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdminsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, fmt.Errorf("failed to count admins: %w", err)
	}

	models, err := s.repo.FindAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, fmt.Errorf("failed to get admins: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, adminID int64, req dto.UpdateProfileRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	if req.Email != nil && *req.Email != admin.Email {
		if err = s.ensureFree(ctx, model.FieldEmail, *req.Email, s.repo.FindByEmail); err != nil {
			return res, err
		}
	}

	if req.Phone != nil && *req.Phone != admin.Phone {
		if err = s.ensureFree(ctx, model.FieldPhone, *req.Phone, s.repo.FindByPhone); err != nil {
			return res, err
		}
	}

	req.Apply(admin)

	if err = s.repo.Update(ctx, admin); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to update admin")

		return res, fmt.Errorf("failed to update admin: %w", err)
	}

	s.invalidate(ctx, adminID)

	res.FromModel(*admin)

	return res, nil
}

func (s *serviceImpl) ensureFree(ctx context.Context, field, value string, find func(context.Context, string) (*model.Admin, bool, error)) error {
	_, found, err := find(ctx, value)
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to check admin uniqueness")

		return fmt.Errorf("failed to check admin %s: %w", field, err)
	}

	if found {
		return &failure.DuplicateError{Entity: model.EntityName, Field: field, Value: value}
	}

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, adminID int64, file multipart.File, header *multipart.FileHeader) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.UploadPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkPhoto(header); err != nil {
		return res, err
	}

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	url, err := s.upload(ctx, photoDirectory, "admin", adminID, file, header)
	if err != nil {
		return res, err
	}

	previous := admin.PhotoURL
	admin.PhotoURL = &url

	if err = s.repo.Update(ctx, admin); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to store admin photo")

		s.removeObject(ctx, &url)

		return res, fmt.Errorf("failed to store admin photo: %w", err)
	}

	s.removeObject(ctx, previous)
	s.invalidate(ctx, adminID)

	res.PhotoURL = url

	return res, nil
}

func checkPhoto(header *multipart.FileHeader) error {
	contentType := header.Header.Get(constant.RequestHeaderContentType)
	if !slices.Contains(photoContentTypes, contentType) {
		return failure.BadRequestFromString("photo must be one of " + strings.Join(photoContentTypes, ", "))
	}

	if header.Size > maxPhotoSizeBytes {
		return failure.BadRequestFromString("photo must not exceed 5 MB")
	}

	return nil
}

// upload stores an image under <directory>/<adminID>/ and returns its URL.
func (s *serviceImpl) upload(ctx context.Context, directory, prefix string, adminID int64, file multipart.File, header *multipart.FileHeader) (string, error) {
	fileName := fmt.Sprintf("%s_%d_%d%s", prefix, adminID, timezone.Now().UnixMilli(), strings.ToLower(path.Ext(header.Filename)))

	url, err := s.storage.UploadFile(ctx, path.Join(directory, strconv.FormatInt(adminID, 10)), fileName, file, header)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Str("directory", directory).Msg("failed to upload photo")

		if errors.Is(err, s3.ErrNotConfigured) {
			return "", failure.ServiceUnavailable(err.Error())
		}

		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) UploadHostelPhoto(ctx context.Context, adminID int64, file multipart.File, header *multipart.FileHeader) (res dto.HostelPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.UploadHostelPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkPhoto(header); err != nil {
		return res, err
	}

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	if len(admin.HostelPhotos) >= model.MaxHostelPhotos {
		return res, failure.BadRequestFromString(fmt.Sprintf("a hostel can have at most %d photos", model.MaxHostelPhotos))
	}

	url, err := s.upload(ctx, hostelPhotoDirectory, "hostel", adminID, file, header)
	if err != nil {
		return res, err
	}

	admin.HostelPhotos = append(admin.HostelPhotos.Items(), url)

	if err = s.repo.Update(ctx, admin); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to store hostel photo")

		s.removeObject(ctx, &url)

		return res, fmt.Errorf("failed to store hostel photo: %w", err)
	}

	s.invalidate(ctx, adminID)

	res.PhotoURL = url
	res.HostelPhotos = admin.HostelPhotos.Items()

	return res, nil
}

func (s *serviceImpl) ActivateSubscription(ctx context.Context, adminID int64, subscription dto.Subscription) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.ActivateSubscription")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.SetSubscription(ctx, adminID, subscription.Plan, subscription.Start, subscription.End)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Str("plan", subscription.Plan).Msg("failed to activate subscription")

		return res, fmt.Errorf("failed to activate subscription: %w", err)
	}

	s.invalidate(ctx, adminID)

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	log.Info().Int64("admin_id", adminID).Str("plan", subscription.Plan).Msg("subscription activated")

	res.FromModel(*admin)

	return res, nil
}

// removeObject deletes an uploaded object; failures only leave an orphan.
func (s *serviceImpl) removeObject(ctx context.Context, url *string) {
	if url == nil {
		return
	}

	key := s.storage.ObjectKeyFromURL(*url)
	if key == "" {
		return
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove stored object")
	}
}

func (s *serviceImpl) DeletePhoto(ctx context.Context, adminID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.DeletePhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return err
	}

	if admin.PhotoURL == nil {
		return nil
	}

	previous := admin.PhotoURL
	admin.PhotoURL = nil

	if err = s.repo.Update(ctx, admin); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to clear admin photo")

		return fmt.Errorf("failed to clear admin photo: %w", err)
	}

	s.removeObject(ctx, previous)
	s.invalidate(ctx, adminID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, adminID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return err
	}

	dropTables := s.cfg.Tenancy.DropTablesOnDelete
	if dropTables {
		if err = s.provisioner.DropTenant(ctx, admin.TenantID()); err != nil {
			log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to drop tenant tables")

			return fmt.Errorf("failed to drop tenant tables: %w", err)
		}
	}

	if err = s.repo.Delete(ctx, adminID); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to delete admin")

		return fmt.Errorf("failed to delete admin: %w", err)
	}

	log.Info().Int64("admin_id", adminID).Bool("tables_dropped", dropTables).Msg("admin deleted")

	s.removeObject(ctx, admin.PhotoURL)
	s.invalidate(ctx, adminID)

	event := dto.AdminEvent{TablesDropped: dropTables}
	event.FromModel(*admin)
	broker.PublishAsync(ctx, s.publisher, broker.EventAdminDeleted, event)

	return nil
}

func (s *serviceImpl) SetFrozen(ctx context.Context, adminID int64, frozen bool) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.SetFrozen")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.SetFrozen(ctx, adminID, frozen); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to change frozen state")

		return res, fmt.Errorf("failed to change frozen state: %w", err)
	}

	s.invalidate(ctx, adminID)

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	res.FromModel(*admin)

	return res, nil
}

func (s *serviceImpl) TableStatus(ctx context.Context, adminID int64) (res dto.TableStatus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.TableStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	missing, err := s.provisioner.MissingTables(ctx, admin.TenantID())
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to read table status")

		return res, fmt.Errorf("failed to read table status: %w", err)
	}

	res.FromKinds(missing)

	return res, nil
}

// RepairTables provisions whatever is missing. A provisioning failure is
// reported in the response rather than as an error.
func (s *serviceImpl) RepairTables(ctx context.Context, adminID int64) (res dto.RepairTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.RepairTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.load(ctx, adminID)
	if err != nil {
		return res, err
	}

	tenantID := admin.TenantID()
	res.AdminID = adminID

	before, err := s.provisioner.MissingTables(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to read table status")

		return res, fmt.Errorf("failed to read table status: %w", err)
	}

	res.MissingBefore = dto.KindNames(before)

	if len(before) > 0 {
		if provisionErr := s.provisioner.ProvisionTenant(ctx, tenantID); provisionErr != nil {
			log.Error().Err(provisionErr).Int64("admin_id", adminID).Msg("failed to repair tenant tables")

			res.Error = provisionErr.Error()
		}
	}

	after, err := s.provisioner.MissingTables(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to read table status")

		return res, fmt.Errorf("failed to read table status: %w", err)
	}

	res.MissingAfter = dto.KindNames(after)
	res.Repaired = len(after) == 0

	return res, nil
}

func (s *serviceImpl) ProvisionAll(ctx context.Context) (failed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.ProvisionAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{Page: 1, Limit: provisionPageSize}
	provisioned := 0

	for {
		admins, err := s.repo.FindAll(ctx, params, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Int("page", params.Page).Msg("failed to list admins")

			return failed, fmt.Errorf("failed to list admins: %w", err)
		}

		for _, admin := range admins {
			if err := s.provisioner.ProvisionTenant(ctx, admin.TenantID()); err != nil {
				log.Error().Err(err).Int64("admin_id", admin.ID).Msg("failed to provision tenant tables")

				failed++

				continue
			}

			provisioned++
		}

		if len(admins) < params.Limit {
			break
		}

		params.Page++
	}

	log.Info().Int("provisioned", provisioned).Int("failed", failed).Msg("tenant tables provisioned")

	return failed, nil
}
