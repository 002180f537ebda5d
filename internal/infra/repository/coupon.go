package repository

import (
	"context"
	"time"

	"storefront-api/internal/domain/coupon"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/cache"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findBindingByCodeQuery = `
SELECT id, code, user_id, campaign_id, active, redeemed, redeemed_at, expires_at, issued_at
FROM user_coupons
WHERE code = $1 AND user_id = $2`

const findCampaignQuery = `
SELECT id, name, active, discount_type, discount_percent, discount_amount_cents,
       max_discount_cents, min_purchase_cents, valid_from, valid_to
FROM campaigns
WHERE id = $1`

const listCampaignCategoriesQuery = `
SELECT category_id FROM campaign_categories WHERE campaign_id = $1`

const listCampaignVariantsQuery = `
SELECT variant_id FROM campaign_variants WHERE campaign_id = $1`

const listCampaignCriteriaQuery = `
SELECT kind, groups FROM campaign_criteria WHERE campaign_id = $1 ORDER BY position`

// markRedeemedQuery flips the flag only when still unset, so two concurrent
// redemptions cannot both succeed.
const markRedeemedQuery = `
UPDATE user_coupons
SET redeemed = TRUE, redeemed_at = $2
WHERE id = $1 AND redeemed = FALSE`

const listBindingsByUserQuery = `
SELECT uc.id, uc.code, c.name, c.discount_type, c.discount_percent,
       c.discount_amount_cents, c.max_discount_cents,
       uc.active AND c.active AS active, uc.redeemed, uc.redeemed_at,
       uc.expires_at, uc.issued_at
FROM user_coupons uc
JOIN campaigns c ON c.id = uc.campaign_id
WHERE uc.user_id = $1
ORDER BY uc.issued_at DESC`

const (
	discountTypePercentage = "percentage"
	discountTypeFixed      = "fixed"
)

// campaignData is the flat, cacheable form of a campaign. The domain entity
// keeps its fields unexported, so the cache round-trips this struct instead.
type campaignData struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Active              bool            `json:"active"`
	DiscountType        string          `json:"discount_type"`
	DiscountPercent     float64         `json:"discount_percent"`
	DiscountAmountCents int64           `json:"discount_amount_cents"`
	MaxDiscountCents    int64           `json:"max_discount_cents"`
	MinPurchaseCents    int64           `json:"min_purchase_cents"`
	CategoryIDs         []uuid.UUID     `json:"category_ids"`
	VariantIDs          []uuid.UUID     `json:"variant_ids"`
	Criteria            []criterionData `json:"criteria"`
	ValidFrom           *time.Time      `json:"valid_from"`
	ValidTo             *time.Time      `json:"valid_to"`
}

type criterionData struct {
	Kind   string   `json:"kind"`
	Groups []string `json:"groups"`
}

type CouponRepository struct {
	db        db.DBTX
	campaigns *cache.CampaignCache
}

func NewCouponRepository(conn db.DBTX, campaigns *cache.CampaignCache) *CouponRepository {
	return &CouponRepository{db: conn, campaigns: campaigns}
}

func (r *CouponRepository) FindBindingWithCampaign(ctx context.Context, code string, userID uuid.UUID) (*coupon.UserCoupon, *coupon.Campaign, error) {
	var (
		id, uid, campaignID uuid.UUID
		bindingCode         string
		active, redeemed    bool
		redeemedAt          *time.Time
		expiresAt, issuedAt time.Time
	)
	err := r.db.QueryRow(ctx, findBindingByCodeQuery, code, userID).
		Scan(&id, &bindingCode, &uid, &campaignID, &active, &redeemed, &redeemedAt, &expiresAt, &issuedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find coupon binding", err)
	}
	binding := coupon.NewUserCoupon(id, bindingCode, uid, campaignID, active, redeemed, redeemedAt, expiresAt, issuedAt)

	data, err := r.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}
	campaign, err := toCampaign(data)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("campaign row is inconsistent", err, infra.KindDataIntegrity)
	}
	return binding, campaign, nil
}

func (r *CouponRepository) MarkRedeemed(ctx context.Context, bindingID uuid.UUID, redeemedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markRedeemedQuery, bindingID, redeemedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark coupon redeemed", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CouponRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.CouponBindingView, error) {
	rows, err := r.db.Query(ctx, listBindingsByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponBindingView
	for rows.Next() {
		var (
			view                queries.CouponBindingView
			discountType        string
			discountPercent     float64
			discountAmountCents int64
			maxDiscountCents    int64
		)
		if err := rows.Scan(&view.ID, &view.Code, &view.CampaignName,
			&discountType, &discountPercent, &discountAmountCents, &maxDiscountCents,
			&view.Active, &view.Redeemed, &view.RedeemedAt,
			&view.ExpiresAt, &view.IssuedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		discount, err := toDiscount(discountType, discountPercent, discountAmountCents, maxDiscountCents)
		if err != nil {
			return nil, infra.WrapRepoErr("campaign row is inconsistent", err, infra.KindDataIntegrity)
		}
		view.DiscountDescription = discount.Describe()
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return views, nil
}

func (r *CouponRepository) loadCampaign(ctx context.Context, campaignID uuid.UUID) (*campaignData, error) {
	var data campaignData
	if r.campaigns != nil && r.campaigns.Get(ctx, campaignID, &data) {
		return &data, nil
	}

	err := r.db.QueryRow(ctx, findCampaignQuery, campaignID).
		Scan(&data.ID, &data.Name, &data.Active, &data.DiscountType,
			&data.DiscountPercent, &data.DiscountAmountCents, &data.MaxDiscountCents,
			&data.MinPurchaseCents, &data.ValidFrom, &data.ValidTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// A binding pointing at a missing campaign is a data fault, not
			// a user error.
			return nil, infra.WrapRepoErr("campaign not found for binding", err, infra.KindDataIntegrity)
		}
		return nil, infra.WrapRepoErr("failed to load campaign", err)
	}

	if data.CategoryIDs, err = r.listUUIDs(ctx, listCampaignCategoriesQuery, campaignID); err != nil {
		return nil, err
	}
	if data.VariantIDs, err = r.listUUIDs(ctx, listCampaignVariantsQuery, campaignID); err != nil {
		return nil, err
	}
	if data.Criteria, err = r.listCriteria(ctx, campaignID); err != nil {
		return nil, err
	}

	if r.campaigns != nil {
		r.campaigns.Set(ctx, campaignID, &data)
	}
	return &data, nil
}

func (r *CouponRepository) listUUIDs(ctx context.Context, query string, campaignID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load campaign scope", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign scope row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read campaign scope rows", err)
	}
	return ids, nil
}

func (r *CouponRepository) listCriteria(ctx context.Context, campaignID uuid.UUID) ([]criterionData, error) {
	rows, err := r.db.Query(ctx, listCampaignCriteriaQuery, campaignID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load campaign criteria", err)
	}
	defer rows.Close()

	var criteria []criterionData
	for rows.Next() {
		var c criterionData
		if err := rows.Scan(&c.Kind, &c.Groups); err != nil {
			return nil, infra.WrapRepoErr("failed to scan criterion row", err)
		}
		criteria = append(criteria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read criterion rows", err)
	}
	return criteria, nil
}

func toCampaign(data *campaignData) (*coupon.Campaign, error) {
	discount, err := toDiscount(data.DiscountType, data.DiscountPercent, data.DiscountAmountCents, data.MaxDiscountCents)
	if err != nil {
		return nil, err
	}

	criteria := make([]coupon.Criterion, 0, len(data.Criteria))
	for _, c := range data.Criteria {
		criteria = append(criteria, coupon.Criterion{
			Kind:   coupon.CriterionKind(c.Kind),
			Groups: c.Groups,
		})
	}

	return coupon.NewCampaign(
		data.ID, data.Name, data.Active,
		discount, data.MinPurchaseCents,
		data.CategoryIDs, data.VariantIDs,
		criteria,
		data.ValidFrom, data.ValidTo,
	)
}

func toDiscount(discountType string, percent float64, amountCents, maxCents int64) (coupon.Discount, error) {
	switch discountType {
	case discountTypePercentage:
		return coupon.NewPercentageDiscount(percent, maxCents)
	case discountTypeFixed:
		return coupon.NewFixedDiscount(amountCents)
	default:
		return nil, errs.Newf("unknown discount type %q", discountType)
	}
}
