package walletstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cozycup/internal/domain/wallet"
	"cozycup/internal/infra"
	"cozycup/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PurchasesCollection   = "purchases"
	RedemptionsCollection = "redemptions"
)

type purchaseDoc struct {
	ID            string    `bson:"_id"`
	CustomerID    string    `bson:"customerId"`
	PackageID     string    `bson:"packageId"`
	CreditsTotal  int       `bson:"creditsTotal"`
	CreditsLeft   int       `bson:"creditsLeft"`
	PaymentMethod string    `bson:"paymentMethod"`
	Version       int64     `bson:"version"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

type redemptionDoc struct {
	ID         string    `bson:"_id"`
	CustomerID string    `bson:"customerId"`
	PurchaseID string    `bson:"purchaseId"`
	RedeemedAt time.Time `bson:"redeemedAt"`
}

func toPurchaseDoc(p *wallet.Purchase) purchaseDoc {
	return purchaseDoc{
		ID:            p.ID().String(),
		CustomerID:    p.CustomerID().String(),
		PackageID:     p.PackageID().String(),
		CreditsTotal:  p.CreditsTotal(),
		CreditsLeft:   p.CreditsLeft(),
		PaymentMethod: p.PaymentMethod().String(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func (d purchaseDoc) toDomain() (*wallet.Purchase, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := uuid.Parse(d.CustomerID)
	if err != nil {
		return nil, err
	}
	packageID, err := uuid.Parse(d.PackageID)
	if err != nil {
		return nil, err
	}
	return wallet.ReconstructPurchase(id, customerID, packageID, d.CreditsTotal, d.CreditsLeft,
		wallet.PaymentMethod(d.PaymentMethod), d.Version, d.CreatedAt.UTC(), d.UpdatedAt.UTC()), nil
}

// helloReply holds the topology fields of the "hello" command.
type helloReply struct {
	SetName string `bson:"setName"`
	Msg     string `bson:"msg"`
}

// transactional reports whether the topology accepts multi-document
// transactions: replica set members and mongos routers do, standalones don't.
func (h helloReply) transactional() bool {
	return h.SetName != "" || h.Msg == "isdbgrid"
}

// MongoStore keeps purchases and redemptions in MongoDB. Transactions are used
// only when the deployment supports them; otherwise redemption falls back to a
// version compare-and-set.
type MongoStore struct {
	client      *mongo.Client
	purchases   *mongo.Collection
	redemptions *mongo.Collection
	supportsTx  bool
}

func NewMongoStore(ctx context.Context, database *mongo.Database, logger *slog.Logger) *MongoStore {
	s := &MongoStore{
		client:      database.Client(),
		purchases:   database.Collection(PurchasesCollection),
		redemptions: database.Collection(RedemptionsCollection),
	}

	var reply helloReply
	if err := database.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&reply); err != nil {
		logger.Warn("mongo topology probe failed, redeem will use compare-and-set", "error", err.Error())
	} else {
		s.supportsTx = reply.transactional()
	}
	logger.Info("mongo wallet store ready", "transactions", s.supportsTx)
	return s
}

// EnsureIndexes creates the lookup indexes the wallet queries rely on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.purchases.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to index purchases", err)
	}
	_, err = s.redemptions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "purchaseId", Value: 1}}},
		{Keys: bson.D{{Key: "redeemedAt", Value: 1}}},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to index redemptions", err)
	}
	return nil
}

func (s *MongoStore) SupportsTransactions() bool { return s.supportsTx }

func (s *MongoStore) WithinTx(ctx context.Context, fn func(ctx context.Context, w shared.WalletWriter) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return infra.WrapRepoErr("failed to start mongo session", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, s)
	})
	return err
}

func (s *MongoStore) FindOwnedPurchase(ctx context.Context, purchaseID, customerID uuid.UUID) (*wallet.Purchase, error) {
	return s.findPurchase(ctx, bson.M{"_id": purchaseID.String(), "customerId": customerID.String()})
}

func (s *MongoStore) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*wallet.Purchase, error) {
	return s.findPurchase(ctx, bson.M{"_id": id.String()})
}

func (s *MongoStore) findPurchase(ctx context.Context, filter bson.M) (*wallet.Purchase, error) {
	var doc purchaseDoc
	if err := s.purchases.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}
	p, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode purchase", err)
	}
	return p, nil
}

func (s *MongoStore) CompareAndSetCredits(ctx context.Context, p *wallet.Purchase, expectedVersion int64) (bool, error) {
	res, err := s.purchases.UpdateOne(ctx,
		bson.M{"_id": p.ID().String(), "version": expectedVersion},
		bson.M{"$set": bson.M{
			"creditsLeft": p.CreditsLeft(),
			"version":     p.Version(),
			"updatedAt":   p.UpdatedAt(),
		}},
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update purchase credits", err)
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) InsertRedemption(ctx context.Context, r *wallet.Redemption) error {
	_, err := s.redemptions.InsertOne(ctx, redemptionDoc{
		ID:         r.ID().String(),
		CustomerID: r.CustomerID().String(),
		PurchaseID: r.PurchaseID().String(),
		RedeemedAt: r.RedeemedAt(),
	})
	if err != nil {
		return wrapWriteErr("failed to record redemption", err)
	}
	return nil
}

func (s *MongoStore) RefundCredit(ctx context.Context, purchaseID uuid.UUID) error {
	res, err := s.purchases.UpdateOne(ctx,
		bson.M{"_id": purchaseID.String()},
		bson.M{
			"$inc":         bson.M{"creditsLeft": 1, "version": 1},
			"$currentDate": bson.M{"updatedAt": true},
		},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to refund credit", err)
	}
	if res.MatchedCount == 0 {
		return infra.NotFound("purchase not found")
	}
	return nil
}

func (s *MongoStore) CreatePurchase(ctx context.Context, p *wallet.Purchase) error {
	if _, err := s.purchases.InsertOne(ctx, toPurchaseDoc(p)); err != nil {
		return wrapWriteErr("failed to create purchase", err)
	}
	return nil
}

func (s *MongoStore) ListPurchases(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*wallet.Purchase, int, error) {
	filter := bson.M{"customerId": customerID.String()}

	total, err := s.purchases.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count purchases", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))
	cursor, err := s.purchases.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer cursor.Close(ctx)

	var docs []purchaseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode purchases", err)
	}

	purchases := make([]*wallet.Purchase, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode purchase", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, int(total), nil
}

func (s *MongoStore) DayTotals(ctx context.Context, from, to time.Time) (shared.WalletDayTotals, error) {
	var totals shared.WalletDayTotals

	cursor, err := s.purchases.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"credits": bson.M{"$sum": "$creditsTotal"},
		}}},
	})
	if err != nil {
		return totals, infra.WrapRepoErr("failed to total purchases", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Count   int `bson:"count"`
		Credits int `bson:"credits"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return totals, infra.WrapRepoErr("failed to decode purchase totals", err)
	}
	if len(groups) > 0 {
		totals.Purchases = groups[0].Count
		totals.Credits = groups[0].Credits
	}

	n, err := s.redemptions.CountDocuments(ctx, bson.M{"redeemedAt": bson.M{"$gte": from, "$lt": to}})
	if err != nil {
		return totals, infra.WrapRepoErr("failed to total redemptions", err)
	}
	totals.Redemptions = int(n)
	return totals, nil
}

func wrapWriteErr(msg string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}
